package uikitscan

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/buger/jsonparser"
	"gitlab.com/tozd/go/errors"

	"github.com/yacobolo/uikitscan/internal/filelock"
)

// WebTypesFile is the IDE component metadata file shipped with the library.
const WebTypesFile = "web-types.json"

// PatchWebTypes points the "web-types" field of the project's package.json at the
// library's component metadata so IDEs can complete component props. It returns the
// value written, or "" when nothing was done. The library repository is left untouched.
// Other fields keep their order and formatting.
func PatchWebTypes(opts Options) (string, error) {
	o := opts.withDefaults()
	if o.Env == EnvLibrary {
		return "", nil
	}

	webTypes := "./" + WebTypesFile
	if _, err := os.Stat(o.path(WebTypesFile)); err != nil {
		webTypes = "./" + filepath.ToSlash(filepath.Join(o.LibraryDir, WebTypesFile))
	}

	pkgPath := o.path("package.json")
	// #nosec G304 - package.json of the configured root
	data, err := os.ReadFile(pkgPath)
	if err != nil {
		return "", errors.Errorf("read %s: %w", pkgPath, err)
	}

	if current, err := jsonparser.GetString(data, "web-types"); err == nil && current == webTypes {
		return webTypes, nil
	}

	patched, err := jsonparser.Set(data, []byte(strconv.Quote(webTypes)), "web-types")
	if err != nil {
		return "", errors.Errorf("%w: patch %s: %s", ErrMalformedConfig, pkgPath, err.Error())
	}

	if err := filelock.LockedWriteFile(pkgPath, patched, 0o644); err != nil {
		return "", err
	}

	logger := o.log()
	logger.Debug().Str("web-types", webTypes).Msg("package.json patched")
	return webTypes, nil
}
