package internal

import "github.com/sirupsen/logrus"

// Log receives warnings about malformed input and debug traces of the relate
// phases. Replace it to route engine logging elsewhere.
var Log logrus.FieldLogger = logrus.StandardLogger()
