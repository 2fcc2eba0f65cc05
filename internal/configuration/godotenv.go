package configuration

import (
	"fmt"

	"github.com/joho/godotenv"
)

// GodotenvProvider is an implementation wrapping the Godotenv framework.
type GodotenvProvider struct{}

// Read reads Unix-type KEY=value configuration files into a map
// (map[key]value). Later files override earlier ones.
func (*GodotenvProvider) Read(filenames ...string) (map[string]string, error) {
	envMap := make(map[string]string)

	for _, filename := range filenames {
		data, err := godotenv.Read(filename)
		if err != nil {
			return nil, fmt.Errorf("(config-godotenv) %s: %w", filename, err)
		}
		for k, v := range data {
			envMap[k] = v
		}
	}

	return envMap, nil
}
