// ABOUTME: Embeds web/static/ CSS and icon files for serving via the site server.
// ABOUTME: Only CSS and icon files are embedded; generated images are served from disk.
package web

import "embed"

//go:embed static/css/*.css static/icons/*.svg
var StaticFS embed.FS
