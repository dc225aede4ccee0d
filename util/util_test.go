package util

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestGetAvailableModels(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"reviews.gob.gz", "amazon.gob.gz", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "old.gob.gz"), 0755); err != nil {
		t.Fatal(err)
	}

	expected := []string{"amazon", "reviews"}
	if got := GetAvailableModels(dir, ".gob.gz"); !reflect.DeepEqual(got, expected) {
		t.Errorf("GetAvailableModels() == %v, want %v", got, expected)
	}

	missing := filepath.Join(dir, "models")
	if got := GetAvailableModels(missing, ".gob.gz"); len(got) != 0 {
		t.Errorf("GetAvailableModels(%q) == %v, want empty", missing, got)
	}
	if ok, err := CheckDirIsValid(missing); !ok || err != nil {
		t.Errorf("GetAvailableModels() should create %s, CheckDirIsValid() == %t, %v", missing, ok, err)
	}
}

func TestCheckDirIsValid(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file")
	if err := os.WriteFile(file, nil, 0644); err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		path string
		want bool
	}{
		{dir, true},
		{file, false},
		{filepath.Join(dir, "nope"), false},
	}

	for _, v := range cases {
		got, err := CheckDirIsValid(v.path)
		if err != nil {
			t.Errorf("CheckDirIsValid(%q) returned error %v", v.path, err)
		}
		if got != v.want {
			t.Errorf("CheckDirIsValid(%q) == %t, want %t", v.path, got, v.want)
		}
	}
}
