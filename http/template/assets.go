package template

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/xy-planning-network/quiz"
)

// AssetsPath is the URL prefix client side assets are served under.
const AssetsPath = "/assets/"

// AssetURI encloses the environment and filesystem so when called executing a template,
// emits valid URI for client side static and bundled assets.
//
// Outside of development, AssetURI resolves assetPath to its hashed, bundled file,
// e.g., js/app.js => /assets/js/app-4f9c1d.js.
func AssetURI(env quiz.Environment, filesys fs.FS) (string, func(string) string) {
	return "asset", func(assetPath string) string {
		assetPath = strings.TrimPrefix(assetPath, "/")
		switch {
		case env.IsTesting():
			return ""

		case env.IsDevelopment(), filesys == nil:
			return AssetsPath + assetPath

		default:
			ext := path.Ext(assetPath)
			glob := fmt.Sprintf("%s-*%s", strings.TrimSuffix(assetPath, ext), ext)
			matches, err := fs.Glob(filesys, glob)
			if errors.Is(err, path.ErrBadPattern) || len(matches) == 0 {
				return AssetsPath + assetPath
			}

			return AssetsPath + matches[0]
		}
	}
}
