package engine

import "github.com/sirupsen/logrus"

// LogOpener is the server-side stand-in for opening the deep link in a new
// browsing context: the URL is already returned to the HTTP caller, so the
// engine's own "open" just records that the hand-off happened.
type LogOpener struct{}

func (LogOpener) Open(url string) {
	logrus.WithField("url", url).Info("whatsapp handoff opened")
}
