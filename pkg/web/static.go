package web

import (
	"fmt"
	"io/fs"
	"net/http"
)

// Assets serves the files under subdir of fsys at urlPrefix. Responses carry
// a short Cache-Control lifetime since embedded assets change only on deploy.
func Assets(fsys fs.FS, subdir, urlPrefix string) (http.Handler, error) {
	sub, err := fs.Sub(fsys, subdir)
	if err != nil {
		return nil, fmt.Errorf("assets %s: %w", subdir, err)
	}

	files := http.StripPrefix(urlPrefix, http.FileServerFS(sub))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=3600")
		files.ServeHTTP(w, r)
	}), nil
}
