package huffman

import (
	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("huffman")
