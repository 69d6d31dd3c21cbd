package repositories

import "errors"

// ErrDuplicate reports a write the engine rejected because it would violate
// a unique index (chat id or url_id, project id or git_url). Callers detect
// it with errors.Is.
var ErrDuplicate = errors.New("unique constraint violated")
