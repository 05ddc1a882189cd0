// Package fingerprint computes deterministic content hashes of package
// definitions. A fingerprint changes if and only if the persisted content of
// the package changes; timestamps and the repository display name are not
// part of the content.
package fingerprint

import (
	"crypto/md5" //nolint: gosec
	"encoding/hex"
	"pkgadmin/pkg/domain"
	"slices"
	"strings"

	"github.com/go-faster/jx"
)

// Of returns the fingerprint of the package: the md5 hex digest of its
// canonical JSON encoding.
func Of(p *domain.PackageDefinition) string {
	var e jx.Encoder
	e.Obj(func(e *jx.Encoder) {
		e.Field("id", func(e *jx.Encoder) { e.Str(string(p.ID)) })
		e.Field("name", func(e *jx.Encoder) { e.Str(p.Name) })
		e.Field("auto_update", func(e *jx.Encoder) { e.Bool(p.AutoUpdate) })
		e.Field("repository_id", func(e *jx.Encoder) { e.Str(string(p.Repository.ID)) })
		e.Field("configuration", func(e *jx.Encoder) { encodeProperties(e, p.Configuration) })
	})

	return digest(e.Bytes())
}

// OfConfiguration returns a fingerprint of the configuration alone. Property
// order does not matter, so two packages configured with the same properties
// in a different order share the same configuration fingerprint.
func OfConfiguration(props []domain.ConfigurationProperty) string {
	sorted := slices.Clone(props)
	slices.SortStableFunc(sorted, func(a, b domain.ConfigurationProperty) int {
		return strings.Compare(a.Key, b.Key)
	})

	var e jx.Encoder
	encodeProperties(&e, sorted)

	return digest(e.Bytes())
}

func encodeProperties(e *jx.Encoder, props []domain.ConfigurationProperty) {
	e.Arr(func(e *jx.Encoder) {
		for _, p := range props {
			e.Obj(func(e *jx.Encoder) {
				e.Field("key", func(e *jx.Encoder) { e.Str(p.Key) })
				e.Field("value", func(e *jx.Encoder) { e.Str(p.Value) })
				e.Field("encrypted_value", func(e *jx.Encoder) { e.Str(p.EncryptedValue) })
			})
		}
	})
}

func digest(b []byte) string {
	sum := md5.Sum(b) //nolint: gosec

	return hex.EncodeToString(sum[:])
}
