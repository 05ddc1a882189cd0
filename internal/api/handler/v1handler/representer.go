package v1handler

import (
	"net/http"
	"pkgadmin/pkg/domain"
	"pkgadmin/pkg/serrors"
	"slices"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

const docURL = "https://api.gocd.org/current/#packages"

// packageRequest is the bound request body of create and update. The body is
// accepted either flat or wrapped in a "package" object.
type packageRequest struct {
	ID            domain.PackageID
	Name          string
	AutoUpdate    *bool
	RepositoryID  domain.RepositoryID
	Configuration []domain.ConfigurationProperty
}

func decodePackageRequest(data []byte) (*packageRequest, error) {
	var req packageRequest
	d := jx.DecodeBytes(data)
	if d.Next() != jx.Object {
		return nil, errors.New("request body must be a JSON object")
	}

	if err := d.Obj(func(d *jx.Decoder, key string) error {
		if key != "package" {
			return req.decodeField(d, key)
		}
		if d.Next() != jx.Object {
			return errors.New(`"package" must be an object`)
		}

		return d.Obj(req.decodeField)
	}); err != nil {
		return nil, errors.Wrap(err, "decode package")
	}

	return &req, nil
}

func (r *packageRequest) decodeField(d *jx.Decoder, key string) error {
	switch key {
	case "id":
		v, err := optString(d)
		if err != nil {
			return errors.Wrap(err, "id")
		}
		r.ID = domain.PackageID(v)
	case "name":
		v, err := optString(d)
		if err != nil {
			return errors.Wrap(err, "name")
		}
		r.Name = v
	case "auto_update":
		if d.Next() == jx.Null {
			return d.Null() //nolint: wrapcheck
		}
		v, err := d.Bool()
		if err != nil {
			return errors.Wrap(err, "auto_update")
		}
		r.AutoUpdate = &v
	case "package_repo":
		if d.Next() == jx.Null {
			return d.Null() //nolint: wrapcheck
		}
		if err := d.Obj(func(d *jx.Decoder, key string) error {
			if key != "id" {
				return d.Skip() //nolint: wrapcheck
			}
			v, err := optString(d)
			r.RepositoryID = domain.RepositoryID(v)

			return err
		}); err != nil {
			return errors.Wrap(err, "package_repo")
		}
	case "configuration":
		if d.Next() == jx.Null {
			return d.Null() //nolint: wrapcheck
		}
		if err := d.Arr(func(d *jx.Decoder) error {
			prop, err := decodeProperty(d)
			if err != nil {
				return err
			}
			r.Configuration = append(r.Configuration, prop)

			return nil
		}); err != nil {
			return errors.Wrap(err, "configuration")
		}
	default:
		return d.Skip() //nolint: wrapcheck
	}

	return nil
}

func decodeProperty(d *jx.Decoder) (domain.ConfigurationProperty, error) {
	var prop domain.ConfigurationProperty
	err := d.Obj(func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "key":
			prop.Key, err = optString(d)
		case "value":
			prop.Value, err = optString(d)
		case "encrypted_value":
			prop.EncryptedValue, err = optString(d)
		default:
			err = d.Skip()
		}

		return err //nolint: wrapcheck
	})

	return prop, err //nolint: wrapcheck
}

func optString(d *jx.Decoder) (string, error) {
	if d.Next() == jx.Null {
		return "", d.Null() //nolint: wrapcheck
	}

	return d.Str() //nolint: wrapcheck
}

// toDomain builds the package described by the request, owned by repo.
// auto_update defaults to true when omitted.
func (r *packageRequest) toDomain(repo *domain.PackageRepository) *domain.PackageDefinition {
	autoUpdate := true
	if r.AutoUpdate != nil {
		autoUpdate = *r.AutoUpdate
	}

	return &domain.PackageDefinition{
		ID:            r.ID,
		Name:          r.Name,
		AutoUpdate:    autoUpdate,
		Repository:    repo.Ref(),
		Configuration: r.Configuration,
	}
}

// links builds absolute hypermedia links for a request.
type links struct {
	base string
}

func (h Handler) links(r *http.Request) links {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if fwd := r.Header.Get("X-Forwarded-Proto"); fwd != "" {
		scheme = fwd
	}

	return links{base: scheme + "://" + r.Host + h.deps.BasePath}
}

func (l links) packages() string { return l.base + "/packages" }

func (l links) pkg(ID domain.PackageID) string { return l.packages() + "/" + string(ID) }

func encodeLink(e *jx.Encoder, name, href string) {
	e.Field(name, func(e *jx.Encoder) {
		e.Obj(func(e *jx.Encoder) {
			e.Field("href", func(e *jx.Encoder) { e.Str(href) })
		})
	})
}

// encodePackage writes the representation of pkg. Field errors keyed by a
// configuration key are attached to that property, the others to the package.
func encodePackage(e *jx.Encoder, l links, pkg *domain.PackageDefinition, fields serrors.FieldErrors) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("_links", func(e *jx.Encoder) {
			e.Obj(func(e *jx.Encoder) {
				encodeLink(e, "self", l.pkg(pkg.ID))
				encodeLink(e, "doc", docURL)
				encodeLink(e, "find", l.packages()+"/:package_id")
			})
		})
		e.Field("name", func(e *jx.Encoder) { e.Str(pkg.Name) })
		e.Field("id", func(e *jx.Encoder) { e.Str(string(pkg.ID)) })
		e.Field("auto_update", func(e *jx.Encoder) { e.Bool(pkg.AutoUpdate) })
		e.Field("package_repo", func(e *jx.Encoder) {
			e.Obj(func(e *jx.Encoder) {
				e.Field("id", func(e *jx.Encoder) { e.Str(string(pkg.Repository.ID)) })
				e.Field("name", func(e *jx.Encoder) { e.Str(pkg.Repository.Name) })
			})
		})

		propErrors := serrors.FieldErrors{}
		entityErrors := serrors.FieldErrors{}
		for field, msgs := range fields {
			if key, ok := domain.PropertyKey(field); ok {
				if _, found := pkg.Property(key); found {
					propErrors[key] = msgs

					continue
				}
			}
			entityErrors[field] = msgs
		}

		e.Field("configuration", func(e *jx.Encoder) {
			e.Arr(func(e *jx.Encoder) {
				for _, p := range pkg.Configuration {
					encodeProperty(e, p, propErrors[p.Key])
				}
			})
		})
		if !entityErrors.Empty() {
			e.Field("errors", func(e *jx.Encoder) { encodeFieldErrors(e, entityErrors) })
		}
	})
}

func encodeProperty(e *jx.Encoder, p domain.ConfigurationProperty, errs []string) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("key", func(e *jx.Encoder) { e.Str(p.Key) })
		if p.IsSecure() {
			e.Field("encrypted_value", func(e *jx.Encoder) { e.Str(p.EncryptedValue) })
		} else {
			e.Field("value", func(e *jx.Encoder) { e.Str(p.Value) })
		}
		if len(errs) > 0 {
			e.Field("errors", func(e *jx.Encoder) {
				encodeFieldErrors(e, serrors.FieldErrors{p.Key: errs})
			})
		}
	})
}

// encodeFieldErrors writes field errors with sorted keys so that responses are stable.
func encodeFieldErrors(e *jx.Encoder, fields serrors.FieldErrors) {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	e.Obj(func(e *jx.Encoder) {
		for _, k := range keys {
			e.Field(k, func(e *jx.Encoder) {
				e.Arr(func(e *jx.Encoder) {
					for _, msg := range fields[k] {
						e.Str(msg)
					}
				})
			})
		}
	})
}

func encodePackages(e *jx.Encoder, l links, pkgs []domain.PackageDefinition) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("_links", func(e *jx.Encoder) {
			e.Obj(func(e *jx.Encoder) {
				encodeLink(e, "self", l.packages())
				encodeLink(e, "doc", docURL)
				encodeLink(e, "find", l.packages()+"/:package_id")
			})
		})
		e.Field("_embedded", func(e *jx.Encoder) {
			e.Obj(func(e *jx.Encoder) {
				e.Field("packages", func(e *jx.Encoder) {
					e.Arr(func(e *jx.Encoder) {
						for i := range pkgs {
							encodePackage(e, l, &pkgs[i], nil)
						}
					})
				})
			})
		})
	})
}

func encodeRevisions(e *jx.Encoder, l links, ID domain.PackageID, revs []domain.Revision) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("_links", func(e *jx.Encoder) {
			e.Obj(func(e *jx.Encoder) {
				encodeLink(e, "self", l.pkg(ID)+"/history")
				encodeLink(e, "doc", docURL)
			})
		})
		e.Field("_embedded", func(e *jx.Encoder) {
			e.Obj(func(e *jx.Encoder) {
				e.Field("revisions", func(e *jx.Encoder) {
					e.Arr(func(e *jx.Encoder) {
						for _, rev := range revs {
							encodeRevision(e, rev)
						}
					})
				})
			})
		})
	})
}

func encodeRevision(e *jx.Encoder, rev domain.Revision) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("id", func(e *jx.Encoder) { e.Int64(rev.ID) })
		e.Field("package_id", func(e *jx.Encoder) { e.Str(string(rev.PackageID)) })
		e.Field("package_name", func(e *jx.Encoder) { e.Str(rev.PackageName) })
		e.Field("action", func(e *jx.Encoder) { e.Str(string(rev.Action)) })
		e.Field("actor", func(e *jx.Encoder) { e.Str(rev.Actor) })
		if rev.Fingerprint != "" {
			e.Field("fingerprint", func(e *jx.Encoder) { e.Str(rev.Fingerprint) })
		}
		e.Field("created_at", func(e *jx.Encoder) { e.Str(rev.CreatedAt.UTC().Format(time.RFC3339)) })
	})
}

func writeJSON(w http.ResponseWriter, status int, enc func(e *jx.Encoder)) {
	var e jx.Encoder
	enc(&e)

	w.Header().Set("Content-Type", MediaType)
	w.WriteHeader(status)
	_, _ = w.Write(e.Bytes())
}

// writeMessage writes an error body without an entity.
func writeMessage(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, func(e *jx.Encoder) {
		e.Obj(func(e *jx.Encoder) {
			e.Field("message", func(e *jx.Encoder) { e.Str(message) })
			e.Field("code", func(e *jx.Encoder) { e.Str(code) })
		})
	})
}
