package image

import (
	zlog "github.com/go-imsto/imoptim/log"
)

func logger() zlog.Logger {
	return zlog.Get()
}
