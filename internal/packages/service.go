package packages

import (
	"context"
	"errors"
	"fmt"
	"pkgadmin/internal/config"
	"pkgadmin/pkg/domain"
	"pkgadmin/pkg/fingerprint"
	"pkgadmin/pkg/logger"
	"pkgadmin/pkg/plugin"
	"pkgadmin/pkg/serrors"
	"pkgadmin/pkg/storage"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const tracerName = "pkgadmin/internal/packages"

// Options configure revision bookkeeping of the service.
type Options struct {
	// MaxAttempts is the maximum number of attempts the background worker should
	// make when recording a revision before discarding it.
	MaxAttempts int
	// HistoryLimit is used when History is called with a zero limit.
	HistoryLimit uint
	// MaxHistoryLimit caps the limit passed to History.
	MaxHistoryLimit uint
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxAttempts:     cfg.Worker.MaxAttempts,
		HistoryLimit:    cfg.Packages.HistoryLimit,
		MaxHistoryLimit: cfg.Packages.MaxHistoryLimit,
	}
}

// service is the concrete implementation of the Service interface. Every write
// runs in a single transaction that also enqueues the matching revision job.
type service struct {
	options   Options
	storage   storage.Storage
	validator plugin.Validator
	tracer    trace.Tracer
}

func authorize(actor domain.User) error {
	if !actor.CanAdministerPackages() {
		return serrors.With(serrors.ErrUnauthorized, "You are not authorized to perform this action.")
	}

	return nil
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func (s service) List(ctx context.Context) ([]domain.PackageDefinition, error) {
	pkgs, err := s.storage.Packages(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list packages: %w", err)
	}

	return pkgs, nil
}

// Find returns the package with the given ID or a not-found error.
func (s service) Find(ctx context.Context, ID domain.PackageID) (*domain.PackageDefinition, error) {
	pkg, err := s.storage.PackageByID(ctx, ID)
	if err != nil {
		return nil, fmt.Errorf("could not get package: %w", err)
	}
	if pkg == nil {
		return nil, serrors.With(serrors.ErrNotFound,
			"Either the resource you requested was not found, or you are not authorized to perform this action.")
	}

	return pkg, nil
}

// Create validates pkg, binds it to the repository and stores it. An id is
// assigned when pkg has none. pkg is updated in place so that callers can
// render it even when the creation fails.
func (s service) Create(ctx context.Context,
	pkg *domain.PackageDefinition,
	repositoryID domain.RepositoryID,
	actor domain.User) (_ *domain.PackageDefinition, err error) {
	ctx, span := s.tracer.Start(ctx, "packages.Create",
		trace.WithAttributes(attribute.String("package.repository_id", string(repositoryID))))
	defer func() { endSpan(span, err) }()

	if err := authorize(actor); err != nil {
		return nil, err
	}

	pkg.EnsureIDExists()
	pkg.Repository.ID = repositoryID
	NormalizePackage(pkg)
	span.SetAttributes(attribute.String("package.id", string(pkg.ID)))

	repo, err := s.prepare(ctx, s.storage, pkg)
	if err != nil {
		return nil, err
	}

	var created *domain.PackageDefinition
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		existing, err := tx.PackageByID(ctx, pkg.ID)
		if err != nil {
			return fmt.Errorf("could not get package: %w", err)
		}
		if existing != nil {
			return duplicateID(pkg)
		}

		if err := checkUniqueness(ctx, tx, repo, pkg); err != nil {
			return err
		}

		created, err = tx.StorePackage(ctx, *pkg)
		if errors.Is(err, storage.ErrDuplicateID) {
			return duplicateID(pkg)
		}
		if errors.Is(err, storage.ErrDuplicate) {
			return duplicateName(pkg)
		}
		if err != nil {
			return fmt.Errorf("could not store package: %w", err)
		}

		return s.addRevision(ctx, tx, created, domain.RevisionActionCreate, actor)
	}); err != nil {
		return nil, fmt.Errorf("could not create package: %w", err)
	}

	logger.Info(ctx, "package created",
		zap.String("package_id", string(created.ID)), zap.String("actor", actor.Name))

	return created, nil
}

// Update replaces the package with the given ID by pkg. The write only
// happens when the stored package still has expectedFingerprint; the check
// and the write run under a row lock so concurrent updates presenting the
// same fingerprint cannot both succeed.
func (s service) Update(ctx context.Context,
	ID domain.PackageID,
	pkg *domain.PackageDefinition,
	expectedFingerprint string,
	actor domain.User) (_ *domain.PackageDefinition, err error) {
	ctx, span := s.tracer.Start(ctx, "packages.Update",
		trace.WithAttributes(attribute.String("package.id", string(ID))))
	defer func() { endSpan(span, err) }()

	if err := authorize(actor); err != nil {
		return nil, err
	}

	if pkg.ID == "" {
		pkg.ID = ID
	}
	NormalizePackage(pkg)
	if pkg.ID != ID {
		fields := serrors.FieldErrors{}
		fields.Add("id", "Changing the id of a package is not allowed.")

		return nil, invalid(pkg, fields)
	}

	repo, err := s.prepare(ctx, s.storage, pkg)
	if err != nil {
		return nil, err
	}

	var updated *domain.PackageDefinition
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		current, err := tx.LockPackageByID(ctx, ID)
		if err != nil {
			return fmt.Errorf("could not lock package: %w", err)
		}
		if current == nil {
			return serrors.With(serrors.ErrNotFound,
				"Either the resource you requested was not found, or you are not authorized to perform this action.")
		}
		if fingerprint.Of(current) != expectedFingerprint {
			return serrors.With(serrors.ErrPreconditionFailed,
				"Someone has modified the configuration for package '%s'. "+
					"Please update your copy of the config with the changes.", current.Name)
		}

		if err := checkUniqueness(ctx, tx, repo, pkg); err != nil {
			return err
		}

		updated, err = tx.UpdatePackage(ctx, *pkg)
		if errors.Is(err, storage.ErrDuplicate) {
			return duplicateName(pkg)
		}
		if err != nil {
			return fmt.Errorf("could not update package: %w", err)
		}
		if updated == nil {
			return serrors.With(serrors.ErrNotFound, "package '%s' was deleted concurrently", ID)
		}

		return s.addRevision(ctx, tx, updated, domain.RevisionActionUpdate, actor)
	}); err != nil {
		return nil, fmt.Errorf("could not update package: %w", err)
	}

	logger.Info(ctx, "package updated",
		zap.String("package_id", string(updated.ID)), zap.String("actor", actor.Name))

	return updated, nil
}

// Delete removes pkg and records the deletion in its history.
func (s service) Delete(ctx context.Context, pkg *domain.PackageDefinition, actor domain.User) (err error) {
	ctx, span := s.tracer.Start(ctx, "packages.Delete",
		trace.WithAttributes(attribute.String("package.id", string(pkg.ID))))
	defer func() { endSpan(span, err) }()

	if err := authorize(actor); err != nil {
		return err
	}

	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		deleted, err := tx.DeletePackage(ctx, pkg.ID)
		if err != nil {
			return fmt.Errorf("could not delete package: %w", err)
		}
		if !deleted {
			return serrors.With(serrors.ErrNotFound,
				"Either the resource you requested was not found, or you are not authorized to perform this action.")
		}

		return s.addRevision(ctx, tx, pkg, domain.RevisionActionDelete, actor)
	}); err != nil {
		return fmt.Errorf("could not delete package: %w", err)
	}

	logger.Info(ctx, "package deleted",
		zap.String("package_id", string(pkg.ID)), zap.String("actor", actor.Name))

	return nil
}

// History returns the newest revisions of an existing package first. A zero
// limit falls back to the configured default.
func (s service) History(ctx context.Context, ID domain.PackageID, limit uint) ([]domain.Revision, error) {
	if _, err := s.Find(ctx, ID); err != nil {
		return nil, err
	}

	if limit == 0 {
		limit = s.options.HistoryLimit
	}
	if s.options.MaxHistoryLimit > 0 && limit > s.options.MaxHistoryLimit {
		limit = s.options.MaxHistoryLimit
	}

	revs, err := s.storage.PackageRevisions(ctx, ID, limit)
	if err != nil {
		return nil, fmt.Errorf("could not get package history: %w", err)
	}

	return revs, nil
}

// prepare runs the checks that do not need a transaction: field validation,
// repository existence and plugin validation. It binds pkg to the repository.
func (s service) prepare(ctx context.Context,
	st storage.RepositoryStorage,
	pkg *domain.PackageDefinition) (*domain.PackageRepository, error) {
	if fields := ValidatePackage(pkg); !fields.Empty() {
		return nil, invalid(pkg, fields)
	}

	repo, err := st.RepositoryByID(ctx, pkg.Repository.ID)
	if err != nil {
		return nil, fmt.Errorf("could not get package repository: %w", err)
	}
	if repo == nil {
		return nil, RepositoryNotFound(pkg.Repository.ID)
	}
	pkg.Repository = repo.Ref()

	pluginErrs, err := s.validator.ValidatePackage(ctx, *repo, *pkg)
	if err != nil {
		return nil, fmt.Errorf("could not validate package with plugin: %w", err)
	}
	if len(pluginErrs) > 0 {
		fields := serrors.FieldErrors{}
		for _, e := range pluginErrs {
			fields.Add(domain.PropertyField(e.Key), "%s", e.Message)
		}

		return nil, invalid(pkg, fields)
	}

	return repo, nil
}

// checkUniqueness verifies that no other package of the repository has the
// same name (case-insensitively) or an identical configuration.
func checkUniqueness(ctx context.Context,
	tx storage.PackageStorage,
	repo *domain.PackageRepository,
	pkg *domain.PackageDefinition) error {
	siblings, err := tx.PackagesByRepository(ctx, repo.ID)
	if err != nil {
		return fmt.Errorf("could not get repository packages: %w", err)
	}

	configFP := fingerprint.OfConfiguration(pkg.Configuration)
	for _, sibling := range siblings {
		if sibling.ID == pkg.ID {
			continue
		}
		if strings.EqualFold(sibling.Name, pkg.Name) {
			return duplicateName(pkg)
		}
		if len(pkg.Configuration) > 0 && fingerprint.OfConfiguration(sibling.Configuration) == configFP {
			fields := serrors.FieldErrors{}
			fields.Add("configuration", "Cannot save package or repo, found duplicate packages. [Repo Name: '%s', "+
				"Package Name: '%s'], [Repo Name: '%s', Package Name: '%s']",
				repo.Name, sibling.Name, repo.Name, pkg.Name)

			return invalid(pkg, fields)
		}
	}

	return nil
}

func (s service) addRevision(ctx context.Context,
	tx storage.JobStorage,
	pkg *domain.PackageDefinition,
	action domain.RevisionAction,
	actor domain.User) error {
	args := RevisionJobArgs{
		PackageID:   pkg.ID,
		PackageName: pkg.Name,
		Action:      action,
		Actor:       actor.Name,
		maxAttempts: s.options.MaxAttempts,
	}
	if action != domain.RevisionActionDelete {
		args.Fingerprint = fingerprint.Of(pkg)
	}

	if _, err := tx.AddJob(ctx, args, nil); err != nil {
		return fmt.Errorf("could not add revision job: %w", err)
	}

	return nil
}

func invalid(pkg *domain.PackageDefinition, fields serrors.FieldErrors) error {
	return serrors.WithFields(serrors.ErrUnprocessable, fields,
		"Validations failed for package '%s'. Please correct and resubmit.", pkg.Name)
}

func duplicateID(pkg *domain.PackageDefinition) error {
	fields := serrors.FieldErrors{}
	fields.Add("id", "Package with id '%s' already exists.", pkg.ID)

	return invalid(pkg, fields)
}

func duplicateName(pkg *domain.PackageDefinition) error {
	fields := serrors.FieldErrors{}
	fields.Add("name", "You have defined multiple packages called '%s'. "+
		"Package names are case-insensitive and must be unique within a repository.", pkg.Name)

	return invalid(pkg, fields)
}

// RepositoryNotFound is the error reported when a package references a
// repository that does not exist.
func RepositoryNotFound(ID domain.RepositoryID) error {
	return serrors.With(serrors.ErrUnprocessable,
		"Could not find the repository with id '%s'. It might have been deleted.", ID)
}

// New creates a new Service backed by the provided storage, validating package
// configuration with validator.
func New(storage storage.Storage, validator plugin.Validator, options Options) Service {
	return &service{
		options:   options,
		storage:   storage,
		validator: validator,
		tracer:    otel.Tracer(tracerName),
	}
}
