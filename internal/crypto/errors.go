package crypto

import "errors"

// ErrAuthentication is returned when an envelope cannot be opened. A
// wrong password and a corrupted or tampered envelope are deliberately
// indistinguishable: leaking which one it was would tell an attacker
// whether the ciphertext is intact.
var ErrAuthentication = errors.New("wrong password or corrupted data")
