// Package messages defines the SSH transport message types this
// implementation emits and their binary encoding.
package messages

/*
SSH Message Numbers
https://www.rfc-editor.org/rfc/rfc4250#section-4.1
Accurate for RFC 4250/4253

Every protocol message starts with a one-byte numeric type code followed by
a type-specific payload. The Message union below is closed: one variant per
message type in the protocol's transport, authentication and connection
layers. Variants whose encoding this layer does not yet supply are still
declared so the union stays exhaustive; encoding one of them is rejected
with ERR_UNENCODABLE_MESSAGE rather than silently skipped.
*/

import (
	"math/big"

	"github.com/go-ssh/sshwire/lib/util/logger"
)

var log = logger.GetSSHWireLogger()

// Message is the closed union of SSH protocol messages. Messages are
// immutable values built by callers; encoding only reads them. The msgID
// method is unexported so the set of variants is fixed to this package.
type Message interface {
	msgID() byte
}

// Disconnect (SSH_MSG_DISCONNECT) terminates the connection with a machine-
// readable reason code and a human-readable description.
type Disconnect struct {
	ReasonCode  uint32
	Description string
	Language    string
}

// Ignore (SSH_MSG_IGNORE) carries data the peer must discard; used as
// padding against traffic analysis.
type Ignore struct {
	Data string
}

// Unimplemented (SSH_MSG_UNIMPLEMENTED) reports the sequence number of a
// received packet the local side does not understand.
type Unimplemented struct {
	Sequence uint32
}

// Debug (SSH_MSG_DEBUG) carries diagnostic text. AlwaysDisplay asks the
// peer to show it to the user unconditionally.
type Debug struct {
	AlwaysDisplay bool
	Message       string
	Language      string
}

// ServiceRequest (SSH_MSG_SERVICE_REQUEST) asks the peer to start a named
// service such as ssh-userauth.
type ServiceRequest struct {
	Name string
}

// ServiceAccept (SSH_MSG_SERVICE_ACCEPT) confirms a service request.
type ServiceAccept struct {
	Name string
}

// NewKeys (SSH_MSG_NEWKEYS) signals that subsequent packets use the newly
// negotiated keys. It has no payload.
type NewKeys struct{}

// KexDHInit (SSH_MSG_KEXDH_INIT) carries the client's Diffie-Hellman
// public value e.
type KexDHInit struct {
	E *big.Int
}

// KexDHReply (SSH_MSG_KEXDH_REPLY) carries the server's host key, its
// Diffie-Hellman public value f and the signature over the exchange hash.
type KexDHReply struct {
	HostKey   RSAPublicKey
	F         *big.Int
	Signature []byte
}

// UserAuthFailure (SSH_MSG_USERAUTH_FAILURE) lists the authentication
// methods that can continue. PartialSuccess reports that the attempted
// method succeeded but more are required.
type UserAuthFailure struct {
	Methods        []string
	PartialSuccess bool
}

// UserAuthSuccess (SSH_MSG_USERAUTH_SUCCESS) reports authentication is
// complete. It has no payload.
type UserAuthSuccess struct{}

// UserAuthBanner (SSH_MSG_USERAUTH_BANNER) carries a banner to show the
// user before authentication completes.
type UserAuthBanner struct {
	Message  string
	Language string
}

// RequestFailure (SSH_MSG_REQUEST_FAILURE) rejects a global request.
type RequestFailure struct{}

// ChannelOpenFailure (SSH_MSG_CHANNEL_OPEN_FAILURE) rejects a channel open.
type ChannelOpenFailure struct{}

// ChannelWindowAdjust (SSH_MSG_CHANNEL_WINDOW_ADJUST) grants the peer
// Delta additional bytes of flow-control window on a channel.
type ChannelWindowAdjust struct {
	Channel uint32
	Delta   uint32
}

// ChannelEOF (SSH_MSG_CHANNEL_EOF) signals no more data will be sent on a
// channel.
type ChannelEOF struct {
	Channel uint32
}

// ChannelClose (SSH_MSG_CHANNEL_CLOSE) closes a channel.
type ChannelClose struct {
	Channel uint32
}

// ChannelSuccess (SSH_MSG_CHANNEL_SUCCESS) reports a channel request
// succeeded.
type ChannelSuccess struct {
	Channel uint32
}

// ChannelFailure (SSH_MSG_CHANNEL_FAILURE) reports a channel request
// failed.
type ChannelFailure struct {
	Channel uint32
}

// The variants below are declared so the union covers the full protocol,
// but this layer does not yet supply their encodings. Encoding one returns
// ERR_UNENCODABLE_MESSAGE; emitting a guessed encoding would corrupt the
// stream.

// UserAuthRequest (SSH_MSG_USERAUTH_REQUEST). Encoding not supplied.
type UserAuthRequest struct {
	User    string
	Service string
	Method  string
	Payload []byte
}

// GlobalRequest (SSH_MSG_GLOBAL_REQUEST). Encoding not supplied.
type GlobalRequest struct {
	Name      string
	WantReply bool
	Payload   []byte
}

// RequestSuccess (SSH_MSG_REQUEST_SUCCESS). Encoding not supplied.
type RequestSuccess struct {
	Payload []byte
}

// ChannelOpen (SSH_MSG_CHANNEL_OPEN). Encoding not supplied.
type ChannelOpen struct {
	ChannelType   string
	SenderChannel uint32
	WindowSize    uint32
	MaxPacketSize uint32
}

// ChannelOpenConfirmation (SSH_MSG_CHANNEL_OPEN_CONFIRMATION). Encoding
// not supplied.
type ChannelOpenConfirmation struct {
	Channel       uint32
	SenderChannel uint32
	WindowSize    uint32
	MaxPacketSize uint32
}

// ChannelData (SSH_MSG_CHANNEL_DATA). Encoding not supplied.
type ChannelData struct {
	Channel uint32
	Data    []byte
}

// ChannelExtendedData (SSH_MSG_CHANNEL_EXTENDED_DATA). Encoding not
// supplied.
type ChannelExtendedData struct {
	Channel  uint32
	DataType uint32
	Data     []byte
}

// ChannelRequest (SSH_MSG_CHANNEL_REQUEST). Encoding not supplied.
type ChannelRequest struct {
	Channel     uint32
	RequestType string
	WantReply   bool
	Payload     []byte
}

func (Disconnect) msgID() byte { return SSH_MSG_DISCONNECT }
func (Ignore) msgID() byte { return SSH_MSG_IGNORE }
func (Unimplemented) msgID() byte { return SSH_MSG_UNIMPLEMENTED }
func (Debug) msgID() byte { return SSH_MSG_DEBUG }
func (ServiceRequest) msgID() byte { return SSH_MSG_SERVICE_REQUEST }
func (ServiceAccept) msgID() byte { return SSH_MSG_SERVICE_ACCEPT }
func (KexInit) msgID() byte { return SSH_MSG_KEXINIT }
func (NewKeys) msgID() byte { return SSH_MSG_NEWKEYS }
func (KexDHInit) msgID() byte { return SSH_MSG_KEXDH_INIT }
func (KexDHReply) msgID() byte { return SSH_MSG_KEXDH_REPLY }
func (UserAuthRequest) msgID() byte { return SSH_MSG_USERAUTH_REQUEST }
func (UserAuthFailure) msgID() byte { return SSH_MSG_USERAUTH_FAILURE }
func (UserAuthSuccess) msgID() byte { return SSH_MSG_USERAUTH_SUCCESS }
func (UserAuthBanner) msgID() byte { return SSH_MSG_USERAUTH_BANNER }
func (GlobalRequest) msgID() byte { return SSH_MSG_GLOBAL_REQUEST }
func (RequestSuccess) msgID() byte { return SSH_MSG_REQUEST_SUCCESS }
func (RequestFailure) msgID() byte { return SSH_MSG_REQUEST_FAILURE }
func (ChannelOpen) msgID() byte { return SSH_MSG_CHANNEL_OPEN }
func (ChannelOpenConfirmation) msgID() byte { return SSH_MSG_CHANNEL_OPEN_CONFIRMATION }
func (ChannelOpenFailure) msgID() byte { return SSH_MSG_CHANNEL_OPEN_FAILURE }
func (ChannelWindowAdjust) msgID() byte { return SSH_MSG_CHANNEL_WINDOW_ADJUST }
func (ChannelData) msgID() byte { return SSH_MSG_CHANNEL_DATA }
func (ChannelExtendedData) msgID() byte { return SSH_MSG_CHANNEL_EXTENDED_DATA }
func (ChannelEOF) msgID() byte { return SSH_MSG_CHANNEL_EOF }
func (ChannelClose) msgID() byte { return SSH_MSG_CHANNEL_CLOSE }
func (ChannelRequest) msgID() byte { return SSH_MSG_CHANNEL_REQUEST }
func (ChannelSuccess) msgID() byte { return SSH_MSG_CHANNEL_SUCCESS }
func (ChannelFailure) msgID() byte { return SSH_MSG_CHANNEL_FAILURE }
