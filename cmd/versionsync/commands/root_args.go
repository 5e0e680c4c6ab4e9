package commands

type RootArgs struct {
	logLevel  *string
	logFormat *string
	color     *string
	root      *string
	config    *string
}

func NewRootArgs() *RootArgs {
	return &RootArgs{
		logLevel:  new(string),
		logFormat: new(string),
		color:     new(string),
		root:      new(string),
		config:    new(string),
	}
}

func (a *RootArgs) GetLogLevel() string {
	return *a.logLevel
}

func (a *RootArgs) GetLogFormat() string {
	return *a.logFormat
}

func (a *RootArgs) GetColor() string {
	return *a.color
}

func (a *RootArgs) GetRoot() string {
	return *a.root
}

func (a *RootArgs) GetConfig() string {
	return *a.config
}
