package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alligatorO15/expense-analytics/internal/models"
	"gopkg.in/yaml.v3"
)

//go:embed presets.yaml
var defaultPresets []byte

type presetsFile struct {
	Categories []models.CategoryPreset `yaml:"categories" validate:"required,min=1,dive"`
}

// LoadCategoryPresets читает дефолтные категории из yaml. Пустой путь - встроенный файл
func LoadCategoryPresets(filename string) ([]models.CategoryPreset, error) {
	buf := defaultPresets
	if filename != "" {
		var err error
		buf, err = os.ReadFile(filename)
		if err != nil {
			return nil, err
		}
	} else {
		filename = "presets.yaml"
	}

	return parseCategoryPresets(filename, buf)
}

func parseCategoryPresets(filename string, buf []byte) ([]models.CategoryPreset, error) {
	file := &presetsFile{}
	decoder := yaml.NewDecoder(bytes.NewReader(buf))
	decoder.KnownFields(true) // неизвестные поля - ошибка
	if err := decoder.Decode(file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("can't decode YAML from presets file '%s': %v", filename, err)
		}
		return nil, err
	}

	if err := validate.Struct(file); err != nil {
		return nil, fmt.Errorf("invalid presets file '%s': %w", filename, err)
	}

	seen := make(map[string]bool, len(file.Categories))
	for _, preset := range file.Categories {
		if seen[preset.Name] {
			return nil, fmt.Errorf("duplicate category %q in presets file '%s'", preset.Name, filename)
		}
		seen[preset.Name] = true
	}

	return file.Categories, nil
}
