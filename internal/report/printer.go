package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/segclip"
)

// Level classifies a summary line.
type Level int

const (
	LevelOK Level = iota
	LevelWarning
	LevelError
)

// Message keys. English text doubles as the key.
const (
	msgNoWindow   = "Could not read the window coordinates (last line)."
	msgNoSegments = "No segments to display."
	msgLoaded     = "Loaded: %d segments, window [%v, %v]-[%v, %v]"
	msgResult     = "Result: %d visible (partly or fully) of %d"
	msgVisible    = "Visible"
	msgInvisible  = "Invisible"
	msgColIndex   = "#"
	msgColSource  = "Original"
	msgColStatus  = "Status"
	msgColPart    = "Visible segment"
	msgColShare   = "Share"
	msgPoint      = "(%v, %v)"
	msgSegment    = "(%.1f, %.1f) → (%.1f, %.1f)"
	msgShare      = "%.0f%%"

	msgLegendWindow   = "Clip window"
	msgLegendOriginal = "Original segments"
	msgLegendVisible  = "Visible part"
)

var supported = []language.Tag{language.English, language.Russian}

var matcher = language.NewMatcher(supported)

func init() {
	for key, ru := range map[string]string{
		msgNoWindow:   "Не удалось прочитать координаты окна (последняя строка).",
		msgNoSegments: "Нет отрезков для отображения.",
		msgLoaded:     "Загружено отрезков: %d, окно [%v, %v]-[%v, %v]",
		msgResult:     "Результат: %d видимых (частично или полностью) из %d",
		msgVisible:    "Видим",
		msgInvisible:  "Невидим",
		msgColIndex:   "№",
		msgColSource:  "Исходный",
		msgColStatus:  "Статус",
		msgColPart:    "Видимый сегмент",
		msgColShare:   "Доля",

		msgLegendWindow:   "Окно отсечения",
		msgLegendOriginal: "Исходные",
		msgLegendVisible:  "Видимая часть",
	} {
		if err := message.SetString(language.Russian, key, ru); err != nil {
			panic(fmt.Sprintf("report: catalog: %v", err))
		}
	}
}

// Printer formats reports in one language.
type Printer struct {
	tag language.Tag
	p   *message.Printer
}

// NewPrinter returns a Printer for the best supported match of lang, a BCP
// 47 tag such as "en" or "ru-RU". Unknown tags fall back to English.
func NewPrinter(lang string) *Printer {
	tag, _ := language.MatchStrings(matcher, lang)
	base, _ := tag.Base()
	for _, t := range supported {
		if b, _ := t.Base(); b == base {
			tag = t
			break
		}
	}
	return &Printer{tag: tag, p: message.NewPrinter(tag)}
}

// Language returns the language the Printer writes.
func (pr *Printer) Language() language.Tag {
	return pr.tag
}

// Summary describes in: an error without a window, a warning without
// segments, otherwise what was loaded.
func (pr *Printer) Summary(in segclip.Input) (string, Level) {
	switch {
	case !in.HasWindow:
		return pr.p.Sprintf(msgNoWindow), LevelError
	case len(in.Segments) == 0:
		return pr.p.Sprintf(msgNoSegments), LevelWarning
	default:
		w := in.Window
		return pr.p.Sprintf(msgLoaded, len(in.Segments), w.XMin, w.YMin, w.XMax, w.YMax), LevelOK
	}
}

// Title returns the one-line outcome of rep.
func (pr *Printer) Title(rep Report) string {
	return pr.p.Sprintf(msgResult, rep.Visible, len(rep.Rows))
}

// Status returns the localized visibility of a row.
func (pr *Printer) Status(r Row) string {
	if r.Visible {
		return pr.p.Sprintf(msgVisible)
	}
	return pr.p.Sprintf(msgInvisible)
}

// Segment formats the visible part of a row, or "-".
func (pr *Printer) Segment(r Row) string {
	if !r.Visible {
		return "-"
	}
	c := r.Clipped
	return pr.p.Sprintf(msgSegment, c.P1.X, c.P1.Y, c.P2.X, c.P2.Y)
}

// LegendLabels returns the localized names of the window, the original
// segments and their visible parts.
func (pr *Printer) LegendLabels() (window, original, visible string) {
	return pr.p.Sprintf(msgLegendWindow), pr.p.Sprintf(msgLegendOriginal), pr.p.Sprintf(msgLegendVisible)
}

func (pr *Printer) original(r Row) string {
	s := r.Original
	return pr.p.Sprintf(msgPoint, s.P1.X, s.P1.Y) + " → " + pr.p.Sprintf(msgPoint, s.P2.X, s.P2.Y)
}

// WriteTable writes one tab-aligned line per row of rep.
func (pr *Printer) WriteTable(w io.Writer, rep Report) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
		pr.p.Sprintf(msgColIndex), pr.p.Sprintf(msgColSource), pr.p.Sprintf(msgColStatus),
		pr.p.Sprintf(msgColPart), pr.p.Sprintf(msgColShare))
	for _, r := range rep.Rows {
		share := "-"
		if r.Visible {
			share = pr.p.Sprintf(msgShare, r.Fraction*100)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			r.Index, pr.original(r), pr.Status(r), pr.Segment(r), share)
	}
	return tw.Flush()
}
