package packages

import (
	"pkgadmin/pkg/domain"
	"pkgadmin/pkg/serrors"
	"regexp"
	"strings"
)

const (
	// MaxNameLength is the longest accepted package or repository name.
	MaxNameLength = 255
)

var namePattern = regexp.MustCompile(`^[a-zA-Z0-9_\-][a-zA-Z0-9_\-.]*$`)

// NormalizePackage trims surrounding whitespace from the name and
// configuration keys of pkg in place.
func NormalizePackage(pkg *domain.PackageDefinition) {
	pkg.Name = strings.TrimSpace(pkg.Name)
	for i := range pkg.Configuration {
		pkg.Configuration[i].Key = strings.TrimSpace(pkg.Configuration[i].Key)
	}
}

// ValidatePackage checks the fields of a package that can be verified without
// looking at other packages:
//   - name is present, at most MaxNameLength characters, and only uses
//     alphanumerics, underscores, hyphens and periods (not as first character)
//   - every configuration key is present and unique
//   - a property does not carry both a plain and an encrypted value
func ValidatePackage(pkg *domain.PackageDefinition) serrors.FieldErrors {
	errs := serrors.FieldErrors{}
	validateName(errs, "Package", pkg.Name)
	validateConfiguration(errs, pkg.Configuration)

	return errs
}

// ValidateRepository checks the fields of a package repository.
func ValidateRepository(repo *domain.PackageRepository) serrors.FieldErrors {
	errs := serrors.FieldErrors{}
	validateName(errs, "Repository", repo.Name)
	if strings.TrimSpace(repo.PluginID) == "" {
		errs.Add("plugin_id", "Repository plugin id must not be blank.")
	}
	validateConfiguration(errs, repo.Configuration)

	return errs
}

func validateName(errs serrors.FieldErrors, entity, name string) {
	switch {
	case name == "":
		errs.Add("name", "%s name is mandatory.", entity)
	case len(name) > MaxNameLength:
		errs.Add("name", "%s name should not be longer than %d characters.", entity, MaxNameLength)
	case !namePattern.MatchString(name):
		errs.Add("name", "Invalid %s name '%s'. This must be alphanumeric and can contain underscores, "+
			"hyphens and periods (however, it cannot start with a period).", strings.ToLower(entity), name)
	}
}

func validateConfiguration(errs serrors.FieldErrors, props []domain.ConfigurationProperty) {
	seen := make(map[string]struct{}, len(props))
	for _, p := range props {
		if p.Key == "" {
			errs.Add("configuration", "Configuration key must not be blank.")

			continue
		}
		if _, ok := seen[p.Key]; ok {
			errs.Add("configuration", "Duplicate key '%s' found.", p.Key)
		}
		seen[p.Key] = struct{}{}
		if p.Value != "" && p.EncryptedValue != "" {
			errs.Add("configuration", "You may only specify `value` or `encrypted_value` for '%s', not both!", p.Key)
		}
	}
}
