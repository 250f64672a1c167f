package parser

import (
	"encoding/xml"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// XMLTVChannel is a channel-identity hint from a guide feed.
type XMLTVChannel struct {
	ID          string
	DisplayName string
	IconSrc     string
}

// XMLTVProgramme is one broadcast, still keyed by the feed's own channel id.
type XMLTVProgramme struct {
	Channel     string
	Start       time.Time
	Stop        time.Time
	Title       string
	Description string
}

type xmltvDoc struct {
	XMLName    xml.Name         `xml:"tv"`
	Channels   []xmltvChannel   `xml:"channel"`
	Programmes []xmltvProgramme `xml:"programme"`
}

type xmltvChannel struct {
	ID          string    `xml:"id,attr"`
	DisplayName string    `xml:"display-name"`
	Icon        xmltvIcon `xml:"icon"`
}

type xmltvIcon struct {
	Src string `xml:"src,attr"`
}

type xmltvProgramme struct {
	Channel string `xml:"channel,attr"`
	Start   string `xml:"start,attr"`
	Stop    string `xml:"stop,attr"`
	Title   string `xml:"title"`
	Desc    string `xml:"desc"`
}

// ParseXMLTV parses a guide document. Malformed XML fails the whole parse;
// individual programmes with bad timestamps are dropped with a warning.
// Programmes whose stop time is at or before now are discarded.
func ParseXMLTV(data []byte, now time.Time, logger *slog.Logger) ([]XMLTVChannel, []XMLTVProgramme, error) {
	var doc xmltvDoc
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("parse xmltv: %w", err)
	}

	channels := make([]XMLTVChannel, 0, len(doc.Channels))
	for _, c := range doc.Channels {
		if c.ID == "" {
			continue
		}
		channels = append(channels, XMLTVChannel{
			ID:          c.ID,
			DisplayName: strings.TrimSpace(c.DisplayName),
			IconSrc:     c.Icon.Src,
		})
	}

	programmes := make([]XMLTVProgramme, 0, len(doc.Programmes))
	for _, p := range doc.Programmes {
		if p.Channel == "" {
			continue
		}
		start, err := ParseXMLTVTime(p.Start)
		if err != nil {
			logger.Warn("dropping programme with bad start time", "start", p.Start, "channel", p.Channel)
			continue
		}
		stop, err := ParseXMLTVTime(p.Stop)
		if err != nil {
			logger.Warn("dropping programme with bad stop time", "stop", p.Stop, "channel", p.Channel)
			continue
		}
		if !stop.After(now) {
			continue
		}
		title := strings.TrimSpace(p.Title)
		if title == "" {
			title = "No Title"
		}
		programmes = append(programmes, XMLTVProgramme{
			Channel:     p.Channel,
			Start:       start,
			Stop:        stop,
			Title:       title,
			Description: strings.TrimSpace(p.Desc),
		})
	}

	return channels, programmes, nil
}

// ParseXMLTVTime parses the XMLTV timestamp format YYYYMMDDHHMMSS with an
// optional ±HHMM offset. A missing offset means UTC.
func ParseXMLTVTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}
	if strings.ContainsRune(s, ' ') {
		return time.Parse("20060102150405 -0700", s)
	}
	return time.Parse("20060102150405", s)
}
