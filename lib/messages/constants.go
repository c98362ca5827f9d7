package messages

import (
	"errors"
)

// SSH Message Type Constants
// https://www.rfc-editor.org/rfc/rfc4250#section-4.1.2
const (
	SSH_MSG_DISCONNECT                = 1
	SSH_MSG_IGNORE                    = 2
	SSH_MSG_UNIMPLEMENTED             = 3
	SSH_MSG_DEBUG                     = 4
	SSH_MSG_SERVICE_REQUEST           = 5
	SSH_MSG_SERVICE_ACCEPT            = 6
	SSH_MSG_KEXINIT                   = 20
	SSH_MSG_NEWKEYS                   = 21
	SSH_MSG_KEXDH_INIT                = 30
	SSH_MSG_KEXDH_REPLY               = 31
	SSH_MSG_USERAUTH_REQUEST          = 50
	SSH_MSG_USERAUTH_FAILURE          = 51
	SSH_MSG_USERAUTH_SUCCESS          = 52
	SSH_MSG_USERAUTH_BANNER           = 53
	SSH_MSG_GLOBAL_REQUEST            = 80
	SSH_MSG_REQUEST_SUCCESS           = 81
	SSH_MSG_REQUEST_FAILURE           = 82
	SSH_MSG_CHANNEL_OPEN              = 90
	SSH_MSG_CHANNEL_OPEN_CONFIRMATION = 91
	SSH_MSG_CHANNEL_OPEN_FAILURE      = 92
	SSH_MSG_CHANNEL_WINDOW_ADJUST     = 93
	SSH_MSG_CHANNEL_DATA              = 94
	SSH_MSG_CHANNEL_EXTENDED_DATA     = 95
	SSH_MSG_CHANNEL_EOF               = 96
	SSH_MSG_CHANNEL_CLOSE             = 97
	SSH_MSG_CHANNEL_REQUEST           = 98
	SSH_MSG_CHANNEL_SUCCESS           = 99
	SSH_MSG_CHANNEL_FAILURE           = 100
)

// KEXINIT_COOKIE_SIZE is the length of the random cookie that opens the
// SSH_MSG_KEXINIT payload. https://www.rfc-editor.org/rfc/rfc4253#section-7.1
const KEXINIT_COOKIE_SIZE = 16

// KEY_ALGO_RSA is the algorithm name that opens an RSA public-key blob.
const KEY_ALGO_RSA = "ssh-rsa"

// These use errors.New (not oops.Errorf) so callers can match them with errors.Is().
var (
	ERR_UNENCODABLE_MESSAGE = errors.New("message type has no wire encoding")
)
