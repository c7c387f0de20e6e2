package dockerfile

const (
	// DefaultDockerfileName is the file parsed when no file is named.
	DefaultDockerfileName = "Dockerfile"
	// StdinName names standard input in place of a file path.
	StdinName = "-"
)
