package domain

// MediaSender transmits a classified media file (or a plain text notice) to a
// chat. Implemented by the messaging transport; the pipeline only hands off
// paths and propagates transport failures unchanged.
type MediaSender interface {
	SendMedia(chatID int64, kind MediaKind, path, caption string) error
	SendText(chatID int64, text string) error
}
