package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyRunID       = "run_id"
	KeyDocsRoot    = "docs_root"
	KeyRepoRoot    = "repo_root"
	KeyDocument    = "document"
	KeyDocuments   = "documents"
	KeyLink        = "link"
	KeyTarget      = "target"
	KeyLinkKind    = "link_kind"
	KeyBrokenCount = "broken_count"
	KeyDurationMS  = "duration_ms"
	KeyPath        = "path"
	KeyFormat      = "format"
	KeyError       = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func RunID(id string) slog.Attr { return slog.String(KeyRunID, id) }
func DocsRoot(p string) slog.Attr { return slog.String(KeyDocsRoot, p) }
func RepoRoot(p string) slog.Attr { return slog.String(KeyRepoRoot, p) }
func Document(p string) slog.Attr { return slog.String(KeyDocument, p) }
func Documents(n int) slog.Attr { return slog.Int(KeyDocuments, n) }
func Link(raw string) slog.Attr { return slog.String(KeyLink, raw) }
func Target(p string) slog.Attr { return slog.String(KeyTarget, p) }
func LinkKind(k string) slog.Attr { return slog.String(KeyLinkKind, k) }
func BrokenCount(n int) slog.Attr { return slog.Int(KeyBrokenCount, n) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Path(p string) slog.Attr { return slog.String(KeyPath, p) }
func Format(f string) slog.Attr { return slog.String(KeyFormat, f) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
