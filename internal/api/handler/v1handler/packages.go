package v1handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"pkgadmin/internal/packages"
	"pkgadmin/pkg/domain"
	"pkgadmin/pkg/fingerprint"
	"pkgadmin/pkg/serrors"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-faster/jx"
)

const maxBodyBytes = 1 << 20

// Index lists every package definition.
func (h Handler) Index(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.authorize(w, r); !ok {
		return
	}

	pkgs, err := h.deps.Packages.List(r.Context())
	if err != nil {
		h.renderError(w, r, err, nil)

		return
	}

	l := h.links(r)
	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { encodePackages(e, l, pkgs) })
}

// Show renders a single package with its ETag, or 304 when the client
// already holds the current representation.
func (h Handler) Show(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.authorize(w, r); !ok {
		return
	}
	pkg, ok := h.loadPackage(w, r)
	if !ok {
		return
	}

	token := WireToken(fingerprint.Of(pkg))
	w.Header().Set("ETag", token)
	if header := r.Header.Get("If-None-Match"); header != "" && ifNoneMatch(header, token) {
		w.WriteHeader(http.StatusNotModified)

		return
	}

	l := h.links(r)
	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { encodePackage(e, l, pkg, nil) })
}

// Create adds a package to the repository referenced by package_repo.id.
func (h Handler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := h.authorize(w, r)
	if !ok {
		return
	}
	req, ok := h.bind(w, r)
	if !ok {
		return
	}
	repo, ok := h.loadRepository(w, r, req.RepositoryID)
	if !ok {
		return
	}

	pkg := req.toDomain(repo)
	created, err := h.deps.Packages.Create(r.Context(), pkg, repo.ID, user)
	if err != nil {
		h.renderError(w, r, err, pkg)

		return
	}

	h.renderPackage(w, r, http.StatusCreated, created)
}

// Update replaces a package. The If-Match header must present the current
// ETag of the package; the check happens before the body is even read.
func (h Handler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := h.authorize(w, r)
	if !ok {
		return
	}
	existing, ok := h.loadPackage(w, r)
	if !ok {
		return
	}

	current := fingerprint.Of(existing)
	if !ifMatch(r.Header.Get("If-Match"), WireToken(current)) {
		h.renderError(w, r, serrors.With(serrors.ErrPreconditionFailed,
			"Someone has modified the configuration for package '%s'. "+
				"Please update your copy of the config with the changes.", existing.Name), nil)

		return
	}

	req, ok := h.bind(w, r)
	if !ok {
		return
	}
	repo, ok := h.loadRepository(w, r, req.RepositoryID)
	if !ok {
		return
	}

	pkg := req.toDomain(repo)
	updated, err := h.deps.Packages.Update(r.Context(), existing.ID, pkg, current, user)
	if err != nil {
		h.renderError(w, r, err, pkg)

		return
	}

	h.renderPackage(w, r, http.StatusOK, updated)
}

// Destroy deletes a package.
func (h Handler) Destroy(w http.ResponseWriter, r *http.Request) {
	user, ok := h.authorize(w, r)
	if !ok {
		return
	}
	pkg, ok := h.loadPackage(w, r)
	if !ok {
		return
	}

	if err := h.deps.Packages.Delete(r.Context(), pkg, user); err != nil {
		h.renderError(w, r, err, nil)

		return
	}

	msg := fmt.Sprintf("The package definition '%s' was deleted successfully.", pkg.Name)
	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		e.Obj(func(e *jx.Encoder) {
			e.Field("message", func(e *jx.Encoder) { e.Str(msg) })
		})
	})
}

// History lists the newest revisions of a package. The optional limit query
// parameter caps the number of revisions returned.
func (h Handler) History(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.authorize(w, r); !ok {
		return
	}

	var limit uint64
	if q := r.URL.Query().Get("limit"); q != "" {
		var err error
		if limit, err = strconv.ParseUint(q, 10, 32); err != nil || limit == 0 {
			h.renderError(w, r, serrors.With(serrors.ErrBadRequest,
				"limit must be a positive integer, got '%s'", q), nil)

			return
		}
	}

	ID := domain.PackageID(chi.URLParam(r, "package_id"))
	revs, err := h.deps.Packages.History(r.Context(), ID, uint(limit))
	if err != nil {
		h.renderError(w, r, err, nil)

		return
	}

	l := h.links(r)
	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { encodeRevisions(e, l, ID, revs) })
}

func (h Handler) authorize(w http.ResponseWriter, r *http.Request) (domain.User, bool) {
	user := UserFromContext(r.Context())
	if !user.CanAdministerPackages() {
		h.renderError(w, r, serrors.With(serrors.ErrUnauthorized,
			"You are not authorized to perform this action."), nil)

		return user, false
	}

	return user, true
}

func (h Handler) loadPackage(w http.ResponseWriter, r *http.Request) (*domain.PackageDefinition, bool) {
	pkg, err := h.deps.Packages.Find(r.Context(), domain.PackageID(chi.URLParam(r, "package_id")))
	if err != nil {
		h.renderError(w, r, err, nil)

		return nil, false
	}

	return pkg, true
}

// loadRepository resolves the repository referenced by a request body. A
// missing reference or an unknown repository is unprocessable.
func (h Handler) loadRepository(w http.ResponseWriter,
	r *http.Request,
	ID domain.RepositoryID) (*domain.PackageRepository, bool) {
	if ID == "" {
		h.renderError(w, r, serrors.With(serrors.ErrUnprocessable,
			"The package_repo id must be specified."), nil)

		return nil, false
	}

	repo, err := h.deps.Repositories.Find(r.Context(), ID)
	if errors.Is(err, serrors.ErrNotFound) {
		err = packages.RepositoryNotFound(ID)
	}
	if err != nil {
		h.renderError(w, r, err, nil)

		return nil, false
	}

	return repo, true
}

func (h Handler) bind(w http.ResponseWriter, r *http.Request) (*packageRequest, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		h.renderError(w, r, serrors.Wrap(serrors.ErrPayloadTooLarge, err,
			"request body must not exceed %d bytes", tooLarge.Limit), nil)

		return nil, false
	}
	if err != nil {
		h.renderError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "could not read request body"), nil)

		return nil, false
	}

	req, err := decodePackageRequest(body)
	if err != nil {
		h.renderError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "malformed request body"), nil)

		return nil, false
	}

	return req, true
}

func (h Handler) renderPackage(w http.ResponseWriter, r *http.Request, status int, pkg *domain.PackageDefinition) {
	w.Header().Set("ETag", WireToken(fingerprint.Of(pkg)))

	l := h.links(r)
	writeJSON(w, status, func(e *jx.Encoder) { encodePackage(e, l, pkg, nil) })
}

// renderError writes the error body. When pkg is set the attempted package is
// embedded under "data" together with its field errors.
func (h Handler) renderError(w http.ResponseWriter, r *http.Request, err error, pkg *domain.PackageDefinition) {
	res := h.NewError(r.Context(), err)
	if pkg == nil {
		writeMessage(w, res.StatusCode, res.Code, res.Message)

		return
	}

	l := h.links(r)
	writeJSON(w, res.StatusCode, func(e *jx.Encoder) {
		e.Obj(func(e *jx.Encoder) {
			e.Field("message", func(e *jx.Encoder) { e.Str(res.Message) })
			e.Field("code", func(e *jx.Encoder) { e.Str(res.Code) })
			e.Field("data", func(e *jx.Encoder) { encodePackage(e, l, pkg, res.Fields) })
		})
	})
}
