// Package expose implements the strategies that materialize a source
// directory at a target path: Copy, Symlink, Junction and Chained. Chained
// tries its inner methods in order and moves on whenever one fails with a
// failure.LinkError, so a project can fall back to a real copy when links
// are not available.
package expose
