package util

import (
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/AlecAivazis/survey/v2"
)

// SelectModel prompts for one of the ext files in modelDir and returns its path.
// It returns "" when the user picks the exit option.
func SelectModel(modelDir, ext string) string {
	models := GetAvailableModels(modelDir, ext)
	if len(models) == 0 {
		log.Println(TerminalYellow + "No models found in " + modelDir + TerminalReset)
		return ""
	}

	options := []string{}
	for _, m := range models {
		options = append(options, "○ "+m)
	}
	options = append(options, "○ Exit")

	prompt := &survey.Select{
		Message: "Select a model:",
		Options: options,
	}

	var selected string
	err := survey.AskOne(prompt, &selected)
	if err != nil {
		log.Fatal(err)
	}

	selected = strings.Replace(selected, "○ ", "", -1)
	if selected == "Exit" {
		return ""
	}
	return filepath.Join(modelDir, selected+ext)
}

// GetAvailableModels lists the names (without ext) of the ext files stored in modelDir,
// creating the directory when it does not exist yet
func GetAvailableModels(modelDir, ext string) []string {
	files, err := os.ReadDir(modelDir)
	if err != nil {
		log.Println(err)
		err := os.MkdirAll(modelDir, os.FileMode(0755))
		if err != nil {
			log.Println(err)
		}
		return nil
	}

	models := []string{}
	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), ext) {
			continue
		}
		models = append(models, strings.TrimSuffix(f.Name(), ext))
	}
	sort.Strings(models)

	return models
}

func CheckDirIsValid(dirName string) (bool, error) {
	info, err := os.Stat(dirName)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil // Directory does not exist
		}
		return false, err // Some other error occurred
	}
	return info.IsDir(), nil
}

const (
	TerminalReset  = "\033[0m"
	TerminalRed    = "\033[31m"
	TerminalGreen  = "\033[32m"
	TerminalYellow = "\033[33m"
	TerminalBlue   = "\033[34m"
	TerminalPurple = "\033[35m"
	TerminalCyan   = "\033[36m"
	TerminalWhite  = "\033[37m"
)
