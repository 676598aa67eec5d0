// Package media moves wallpaper images between the studio and the outside
// world: loading source images from disk, saving results and exporting them
// to S3-compatible object storage.
package media
