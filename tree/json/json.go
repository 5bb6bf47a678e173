/*
Package json provides functions to serialize trees as JSON
documents and to parse them back.

A tree is serialized as its nested mapping (see tree.ToMapping): a
leaf is a JSON string with its label and an internal node is an
object with a single property, the name of its feature, whose value
is an object with a property for each feature value holding the
serialized subtree.
*/
package json

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/pbanos/sapling/tree"
)

/*
Encode takes the root of a tree and returns a slice of bytes with the
tree serialized as JSON or an error.
*/
func Encode(n tree.Node) ([]byte, error) {
	data, err := json.Marshal(tree.ToMapping(n))
	if err != nil {
		return nil, fmt.Errorf("serializing tree as JSON: %v", err)
	}
	return data, nil
}

/*
Decode takes a slice of bytes with a tree serialized as JSON and
returns the root of the tree or an error.
*/
func Decode(data []byte) (tree.Node, error) {
	var m interface{}
	err := json.Unmarshal(data, &m)
	if err != nil {
		return nil, fmt.Errorf("decoding JSON tree: %v", err)
	}
	return tree.FromMapping(m)
}

/*
WriteTree takes an io.Writer and the root of a tree and prints
a JSON representation of the tree onto the writer. It returns
an error if serialization or printing fails, nil otherwise.
*/
func WriteTree(w io.Writer, n tree.Node) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	err := encoder.Encode(tree.ToMapping(n))
	if err != nil {
		return fmt.Errorf("serializing tree as JSON: %v", err)
	}
	return nil
}

/*
WriteTreeToFile takes a filepath string and the root of a tree
and tries to create a file on the given filepath and later use
WriteTree to write a JSON representation of the tree on it.
It returns an error if the file cannot be opened for writing or
serialization or printing fails, nil otherwise.
*/
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

/*
ReadTree takes an io.Reader and attempts to JSON-decode a
tree from it. It returns the root of the read tree or an error.
*/
func ReadTree(r io.Reader) (tree.Node, error) {
	var m interface{}
	err := json.NewDecoder(r).Decode(&m)
	if err != nil {
		return nil, fmt.Errorf("decoding JSON tree: %v", err)
	}
	return tree.FromMapping(m)
}

/*
ReadTreeFromFile takes a filepath string, opens the file and uses
ReadTree to return the root of the tree read from it or an error.
*/
func ReadTreeFromFile(filepath string) (tree.Node, error) {
	f, err := os.Open(filepath)
	if err != nil {
		return nil, fmt.Errorf("reading tree in JSON from %s: %v", filepath, err)
	}
	defer f.Close()
	n, err := ReadTree(f)
	if err != nil {
		err = fmt.Errorf("parsing tree in JSON from %s: %v", filepath, err)
	}
	return n, err
}
