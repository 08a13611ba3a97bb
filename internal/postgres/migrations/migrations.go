package migrations

import "embed"

// Таблицы справочника и каталога принадлежат другим сервисам и здесь
// не мигрируются.
//
//go:embed *.sql
var FS embed.FS
