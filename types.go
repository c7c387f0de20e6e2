package dockerfile

// Command represents a single instruction of a Dockerfile, for example
// `FROM ubuntu:xenial`. Every field is always set; absent values are empty
// strings or empty slices so that the record keeps a fixed shape.
type Command struct {
	Cmd       string   `json:"cmd" yaml:"cmd"`               // lowercased instruction name (ex: `from`)
	SubCmd    string   `json:"sub_cmd" yaml:"sub_cmd"`       // for ONBUILD only this holds the sub-instruction
	JSON      bool     `json:"json" yaml:"json"`             // whether the value is written in JSON form
	Original  string   `json:"original" yaml:"original"`     // the original source text, continuations joined
	StartLine int      `json:"start_line" yaml:"start_line"` // the 1-based line the instruction starts on
	Flags     []string `json:"flags" yaml:"flags"`           // any flags such as `--from=...` for `COPY`
	Value     []string `json:"value" yaml:"value"`           // the arguments of the instruction (ex: `ubuntu:xenial`)
}
