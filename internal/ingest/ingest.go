package ingest

// FileResult is the per-file discovery outcome.
type FileResult struct {
	Path      string
	Ext       string
	Size      int64
	HashHex   string
	Duplicate bool // same content as a file seen earlier
	Err       string
}

// DirStats summarizes a directory scan.
type DirStats struct {
	Scanned    uint32
	Matched    uint32
	Succeeded  uint32
	Duplicates uint32
	Failed     uint32
}
