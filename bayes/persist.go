package bayes

import (
	"bytes"
	"compress/gzip"
	"encoding/gob"
	"fmt"
	"io"
	"os"
	"path"
)

// ModelFileExt is appended to model names written by WriteModelFile
const ModelFileExt = ".gob.gz"

type FileOps interface {
	MkdirAll(dirName string, perm os.FileMode) error
	WriteModelFile(fileName string, model *Model, dirName string) error
}

type FileOpsImpl struct{}

func (f FileOpsImpl) MkdirAll(dirName string, perm os.FileMode) error {
	return os.MkdirAll(dirName, perm)
}

func (f FileOpsImpl) WriteModelFile(fileName string, model *Model, dirName string) error {
	return WriteModelFile(fileName, model, dirName)
}

type FileOpsNoOp struct{}

func (f FileOpsNoOp) MkdirAll(dirName string, perm os.FileMode) error {
	return nil
}

func (f FileOpsNoOp) WriteModelFile(fileName string, model *Model, dirName string) error {
	return nil
}

// Save gob encodes the model through a gzip stream
func Save(w io.Writer, model *Model) error {
	gzipWriter := gzip.NewWriter(w)

	encoder := gob.NewEncoder(gzipWriter)
	if err := encoder.Encode(model); err != nil {
		return fmt.Errorf("error encoding model: %w", err)
	}

	if err := gzipWriter.Close(); err != nil {
		return fmt.Errorf("error closing gzip writer: %w", err)
	}
	return nil
}

// Load reads a model written by Save
func Load(r io.Reader) (*Model, error) {
	gzipReader, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("error opening gzip stream: %w", err)
	}
	defer gzipReader.Close()

	var model Model
	if err := gob.NewDecoder(gzipReader).Decode(&model); err != nil {
		return nil, fmt.Errorf("error decoding model: %w", err)
	}
	return &model, nil
}

// WriteModelFile compresses the model and writes it to dirName/fileName
func WriteModelFile(fileName string, model *Model, dirName string) error {
	var compressedData bytes.Buffer
	if err := Save(&compressedData, model); err != nil {
		return err
	}

	if err := os.WriteFile(path.Join(dirName, fileName), compressedData.Bytes(), 0644); err != nil {
		return fmt.Errorf("error writing compressed model to disk: %w", err)
	}

	return nil
}

// ReadModelFile reads a model written by WriteModelFile
func ReadModelFile(filePath string) (*Model, error) {
	compressedData, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	return Load(bytes.NewReader(compressedData))
}
