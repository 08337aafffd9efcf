package server

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ironsheep/photo-editor-mcp/internal/editor"
)

// errNoFileSelected is the cancelled-dialog warning.
var errNoFileSelected = errors.New("no file selected")

// Extensions offered by the open and save dialogs.
var (
	openExtensions = []string{".png", ".jpg", ".jpeg", ".bmp", ".gif", ".webp", ".tif", ".tiff"}
	saveExtensions = []string{".jpg", ".jpeg", ".png"}
)

// chooseOpenPath applies the open dialog's rules to path: an empty path is a
// cancellation and only raster formats the editor can decode are accepted.
func chooseOpenPath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", errNoFileSelected
	}
	if !hasExtension(path, openExtensions) {
		return "", &editor.LoadError{
			Path: path,
			Err:  fmt.Errorf("unsupported file type %q", filepath.Ext(path)),
		}
	}
	return path, nil
}

// chooseSavePath applies the save dialog's rules to path: an empty path is a
// cancellation, a missing extension gets defaultExt, and only JPEG and PNG
// destinations are accepted.
func chooseSavePath(path, defaultExt string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", errNoFileSelected
	}
	if filepath.Ext(path) == "" {
		path += defaultExt
	}
	if !hasExtension(path, saveExtensions) {
		return "", &editor.SaveError{
			Path: path,
			Err:  fmt.Errorf("unsupported file type %q (choose .jpg or .png)", filepath.Ext(path)),
		}
	}
	return path, nil
}

func hasExtension(path string, allowed []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, a := range allowed {
		if ext == a {
			return true
		}
	}
	return false
}
