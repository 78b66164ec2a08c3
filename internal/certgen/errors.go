package certgen

import "errors"

// ErrArtifactIO indicates a read or write failure on a pipeline artifact.
// Allocation failures surface as tmpfile.ErrAllocate and openssl failures as
// the openssl package's sentinels; the pipeline propagates all of them
// unmodified.
var ErrArtifactIO = errors.New("artifact read/write failed")
