package document

import (
	"encoding/base64"
	"strconv"
)

// VectorID derives the store id for one chunk of a source. The id is a
// pure function of (source, chunkIndex), so the full id set for a source
// can be re-derived for deletion without any lookup index.
func VectorID(source string, chunkIndex int) string {
	return base64.StdEncoding.EncodeToString([]byte(source)) + "_chunk_" + strconv.Itoa(chunkIndex)
}

// SourceID is the url part of the id scheme, returned to clients after a
// successful ingest.
func SourceID(source string) string {
	return base64.StdEncoding.EncodeToString([]byte(source))
}
