package migrations

import "embed"

// FS embeds the recommendation engine's SQL migrations. golang-migrate
// reads them through the iofs source driver at startup.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version main migrates up to.
const Version = 1
