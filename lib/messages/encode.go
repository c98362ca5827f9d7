package messages

import (
	"github.com/go-ssh/sshwire/lib/wire"
	"github.com/samber/oops"
	"github.com/sirupsen/logrus"
)

// Encoder turns protocol messages into SSH wire bytes. The randomness
// source is injected so encodings that draw random bytes (the KEXINIT
// cookie) stay reproducible under test.
type Encoder struct {
	rand wire.RandomSource
}

// NewEncoder creates an Encoder using the given randomness source, or
// crypto/rand when src is nil.
func NewEncoder(src wire.RandomSource) *Encoder {
	if src == nil {
		src = wire.CryptoRandom
	}
	return &Encoder{rand: src}
}

// Encode is a convenience wrapper using the crypto/rand randomness source.
func Encode(msg Message) ([]byte, error) {
	return NewEncoder(nil).Encode(msg)
}

// Encode maps a message to its exact wire bytes: a fresh buffer, the
// one-byte type code, then the variant payload. Each call owns its buffer
// exclusively, so concurrent encodes need no coordination. An encode either
// returns the complete encoding or fails with no output; it never returns
// partial bytes.
func (e *Encoder) Encode(msg Message) ([]byte, error) {
	buf := wire.NewBuffer()

	switch m := msg.(type) {
	case Disconnect:
		buf.PutMessageID(SSH_MSG_DISCONNECT).
			PutUint32(m.ReasonCode).
			PutString(m.Description).
			PutString(m.Language)
	case Ignore:
		buf.PutMessageID(SSH_MSG_IGNORE).PutString(m.Data)
	case Unimplemented:
		buf.PutMessageID(SSH_MSG_UNIMPLEMENTED).PutUint32(m.Sequence)
	case Debug:
		buf.PutMessageID(SSH_MSG_DEBUG).
			PutBool(m.AlwaysDisplay).
			PutString(m.Message).
			PutString(m.Language)
	case ServiceRequest:
		buf.PutMessageID(SSH_MSG_SERVICE_REQUEST).PutString(m.Name)
	case ServiceAccept:
		buf.PutMessageID(SSH_MSG_SERVICE_ACCEPT).PutString(m.Name)
	case KexInit:
		m.encodeInto(buf.PutMessageID(SSH_MSG_KEXINIT).PutRandom(e.rand, KEXINIT_COOKIE_SIZE))
	case NewKeys:
		buf.PutMessageID(SSH_MSG_NEWKEYS)
	case KexDHInit:
		buf.PutMessageID(SSH_MSG_KEXDH_INIT).PutMpint(m.E)
	case KexDHReply:
		blob := m.HostKey.blobBuffer()
		if err := blob.Err(); err != nil {
			return nil, oops.Wrapf(err, "encoding host key blob")
		}
		buf.PutMessageID(SSH_MSG_KEXDH_REPLY).
			PutBytes(blob.Bytes()).
			PutMpint(m.F).
			PutBytes(m.Signature)
	case UserAuthFailure:
		buf.PutMessageID(SSH_MSG_USERAUTH_FAILURE).
			PutNameList(m.Methods).
			PutBool(m.PartialSuccess)
	case UserAuthSuccess:
		buf.PutMessageID(SSH_MSG_USERAUTH_SUCCESS)
	case UserAuthBanner:
		buf.PutMessageID(SSH_MSG_USERAUTH_BANNER).
			PutString(m.Message).
			PutString(m.Language)
	case RequestFailure:
		buf.PutMessageID(SSH_MSG_REQUEST_FAILURE)
	case ChannelOpenFailure:
		buf.PutMessageID(SSH_MSG_CHANNEL_OPEN_FAILURE)
	case ChannelWindowAdjust:
		buf.PutMessageID(SSH_MSG_CHANNEL_WINDOW_ADJUST).
			PutUint32(m.Channel).
			PutUint32(m.Delta)
	case ChannelEOF:
		buf.PutMessageID(SSH_MSG_CHANNEL_EOF).PutUint32(m.Channel)
	case ChannelClose:
		buf.PutMessageID(SSH_MSG_CHANNEL_CLOSE).PutUint32(m.Channel)
	case ChannelSuccess:
		buf.PutMessageID(SSH_MSG_CHANNEL_SUCCESS).PutUint32(m.Channel)
	case ChannelFailure:
		buf.PutMessageID(SSH_MSG_CHANNEL_FAILURE).PutUint32(m.Channel)
	case UserAuthRequest, GlobalRequest, RequestSuccess, ChannelOpen,
		ChannelOpenConfirmation, ChannelData, ChannelExtendedData, ChannelRequest:
		return nil, e.unencodable(msg)
	default:
		return nil, oops.Errorf("unknown message type %T", msg)
	}

	if err := buf.Err(); err != nil {
		return nil, oops.Wrapf(err, "encoding message type %d", msg.msgID())
	}
	log.WithFields(logrus.Fields{
		"msg_type": msg.msgID(),
		"length":   buf.Len(),
	}).Debug("encoded ssh message")
	return buf.Bytes(), nil
}

// unencodable rejects a declared variant whose encoding this layer does not
// supply. Sending such a message would be a protocol violation by
// construction, so the failure is deterministic and emits nothing.
func (e *Encoder) unencodable(msg Message) error {
	log.WithFields(logrus.Fields{
		"msg_type": msg.msgID(),
	}).Error("refusing to encode message without a wire encoding")
	return oops.Wrapf(ERR_UNENCODABLE_MESSAGE, "message type %d (%T)", msg.msgID(), msg)
}
