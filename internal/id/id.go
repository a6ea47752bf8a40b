// Package id generates the string identifiers assigned to stored records.
package id

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Prefix identifies the collection an id belongs to.
type Prefix string

// Prefixes for every collection in the document.
const (
	Item      Prefix = "item"
	Request   Prefix = "req"
	User      Prefix = "user"
	Volunteer Prefix = "vol"
	Donation  Prefix = "don"
)

// Generate returns "<prefix>-<nanoid>", e.g. "item-V1StGXR8_Z5jdHi6B-myT".
//
// The random part is a 21 character URL-safe NanoID, so ids created in the
// same millisecond never collide the way the old timestamp ids could.
func Generate(prefix Prefix) (string, error) {
	nid, err := gonanoid.New()
	if err != nil {
		return "", fmt.Errorf("generate %s id: %w", prefix, err)
	}
	return string(prefix) + "-" + nid, nil
}

// MustGenerate is like Generate but panics if the system has no entropy.
func MustGenerate(prefix Prefix) string {
	v, err := Generate(prefix)
	if err != nil {
		panic(err)
	}
	return v
}
