package main

import (
	"os"

	"github.com/akmonengine/planesplit/split"
	"gopkg.in/yaml.v3"
)

func writeDump(path string, dump split.Dump[int]) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	encoder := yaml.NewEncoder(f)
	defer encoder.Close()
	encoder.SetIndent(2)
	return encoder.Encode(dump)
}
