/*
Package yaml provides functions to serialize trees as YAML
documents and to parse them back, using the same nested mapping
layout as the json package.
*/
package yaml

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"

	"github.com/pbanos/sapling/tree"
	yaml "gopkg.in/yaml.v2"
)

/*
Encode takes the root of a tree and returns a slice of bytes with the
tree serialized as YAML or an error.
*/
func Encode(n tree.Node) ([]byte, error) {
	data, err := yaml.Marshal(tree.ToMapping(n))
	if err != nil {
		return nil, fmt.Errorf("serializing tree as YAML: %v", err)
	}
	return data, nil
}

/*
Decode takes a slice of bytes with a tree serialized as YAML and
returns the root of the tree or an error.
*/
func Decode(data []byte) (tree.Node, error) {
	var m interface{}
	err := yaml.Unmarshal(data, &m)
	if err != nil {
		return nil, fmt.Errorf("parsing yml tree: %v", err)
	}
	return tree.FromMapping(m)
}

// WriteTree takes an io.Writer and the root of a tree and writes the tree onto it as YAML
func WriteTree(w io.Writer, n tree.Node) error {
	data, err := Encode(n)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// ReadTree reads all of r and decodes a YAML tree from it
func ReadTree(r io.Reader) (tree.Node, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading yml tree: %v", err)
	}
	return Decode(data)
}

/*
ReadTreeFromFile takes a filepath string, reads its contents and uses
Decode to parse it and return the root of the tree or an error.
If the file indicated by the filepath cannot be opened for reading an error
will be returned.
*/
func ReadTreeFromFile(filepath string) (tree.Node, error) {
	data, err := ioutil.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("reading tree yml file %s: %v", filepath, err)
	}
	n, err := Decode(data)
	if err != nil {
		err = fmt.Errorf("parsing tree yml file %s: %v", filepath, err)
	}
	return n, err
}

// WriteTreeToFile creates the file at filepath and writes the tree onto it as YAML
func WriteTreeToFile(filepath string, n tree.Node) error {
	f, err := os.Create(filepath)
	if err != nil {
		return err
	}
	err = WriteTree(f, n)
	cerr := f.Close()
	if err == nil {
		err = cerr
	}
	return err
}
