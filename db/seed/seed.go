package seed

import "embed"

// FS embeds the demo fixtures loaded by the seed command.
//
//go:embed *.yaml
var FS embed.FS

// Default is the fixture used when no file is given.
const Default = "demo.yaml"
