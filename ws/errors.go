package ws

import "errors"

var (
	ErrNotAMember        = errors.New("not-a-member")
	ErrPersistenceFailed = errors.New("persistence-failed")

	ErrConnectionClosed = errors.New("connection-closed")
	ErrSendBufferFull   = errors.New("send-buffer-full")
)
