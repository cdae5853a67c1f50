package types

// DownloadOptions describes one fetch of wheel artifacts into a local
// directory. Platform and PythonVersion pin the artifacts to the
// warehouse's managed runtime so no local build step is needed.
type DownloadOptions struct {
	ManifestPath string
	TargetDir    string
	// IndexURL, when set, replaces pip's default package index.
	IndexURL string
	// Platform is the wheel platform tag (manylinux ABI).
	Platform string
	// PythonVersion is the target runtime version ("3.8").
	PythonVersion string
	// Python is the interpreter used to invoke pip.
	Python string
}
