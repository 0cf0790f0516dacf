package configs

import _ "embed"

// ApplicationYAML is the default application.yml, used when no properties file is configured
//
//go:embed application.yml
var ApplicationYAML []byte

// MessagesYAML is the default messages.yml, used when no messages file is configured
//
//go:embed messages.yml
var MessagesYAML []byte
