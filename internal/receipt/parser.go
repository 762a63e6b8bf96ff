package receipt

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/stevenmunoz/wego-sub001/internal/model"
)

// spanishMonths maps month abbreviations as they appear on InDriver
// receipts to month numbers.
var spanishMonths = map[string]time.Month{
	"ene": time.January,
	"feb": time.February,
	"mar": time.March,
	"abr": time.April,
	"may": time.May,
	"jun": time.June,
	"jul": time.July,
	"ago": time.August,
	"sep": time.September,
	"oct": time.October,
	"nov": time.November,
	"dic": time.December,
}

var (
	// "mar, 2 dic 2025" or "2 dic 2025"
	datePattern = regexp.MustCompile(`(?i)(?:lun|mar|mi[eé]|jue|vie|s[aá]b|dom)?[,.]?\s*(\d{1,2})\s+(ene|feb|mar|abr|may|jun|jul|ago|sep|oct|nov|dic)\s+(\d{4})`)
	// "07:52 a.m." or "04:01 p.m."
	timePattern = regexp.MustCompile(`(?i)(\d{1,2}):(\d{2})\s*(a\.?m\.?|p\.?m\.?)`)
	// "20 min." or "1 hr."
	durationPattern = regexp.MustCompile(`(?i)(?:Duraci[oó]n)?\s*(\d+)\s*(min|hr)\.?`)
	// "6,4 km" or "715 metro"; OCR sometimes turns the comma into a space
	distancePattern = regexp.MustCompile(`(?i)(?:Distancia)?\s*(\d+[,.\s]?\d*)\s*(km|metro)`)
	// "COP 15,000.00" or the Colombian suffix form "18.000,00 COP"
	currencyPattern = regexp.MustCompile(`(?i)COP\s*([\d.,]+)|([\d.,]+)\s*COP`)
	// "9.5%" or "9,5%"
	percentPattern = regexp.MustCompile(`([\d.,]+)\s*%`)

	cancelledPattern = regexp.MustCompile(`(?i)pasajero\s+cancel[oó]`)
	cashPattern      = regexp.MustCompile(`(?i)pago\s+en\s+efectivo`)
	nequiPattern     = regexp.MustCompile(`(?i)nequi`)

	netIncomeLabel     = regexp.MustCompile(`(?i)mis\s+ingresos`)
	fareLabel          = regexp.MustCompile(`(?i)\btarifa\b`)
	totalReceivedLabel = regexp.MustCompile(`(?i)total\s+recibido`)
	commissionLabel    = regexp.MustCompile(`(?i)(pagos?\s+por\s+el\s+servicio|9[,.]5\s*%)`)
	taxLabel           = regexp.MustCompile(`(?i)iva\s+(del\s+)?pago`)
	totalPaidLabel     = regexp.MustCompile(`(?i)total\s+pagado`)

	// "Cra 9 #45-12" or "Calle 100 ..."; receipts put the destination near
	// the top, before the financial section
	destinationPrefix = regexp.MustCompile(`(?i)^(cl|cra|carrera|calle|av|universidad|edificio|centro)`)
	destinationNumber = regexp.MustCompile(`#\s*\d+`)
	// OCR artifacts like "E) " or "8)" in front of the passenger name
	ocrLinePrefix = regexp.MustCompile(`^[A-Z0-9]\)\s*`)
	namePattern   = regexp.MustCompile(`^[A-ZÁÉÍÓÚÑ][a-záéíóúñ]+(\s+[A-ZÁÉÍÓÚÑ][a-záéíóúñ]+)?$`)

	ratedPattern = regexp.MustCompile(`(?i)calificaste`)

	blankLines = regexp.MustCompile(`\n\s*\n+`)
	spaceRuns  = regexp.MustCompile(`[^\S\n]+`)
)

const defaultCommissionPercent = 9.5

// ExtractedRide is the structured result of parsing one receipt's OCR text.
type ExtractedRide struct {
	Date               *time.Time
	Time               string
	Status             model.RideStatus
	CancellationReason string

	PassengerName      string
	DestinationAddress string
	RatingGiven        int

	PaymentMethod model.PaymentMethod
	PaymentLabel  string

	Fare              float64
	TotalReceived     float64
	Commission        float64
	CommissionPercent float64
	Tax               float64
	TotalPaid         float64
	NetIncome         float64

	DistanceKm      float64
	DurationMinutes int

	Confidence float64
}

// Parser extracts structured ride data from InDriver receipt OCR text. It
// is stateless and safe for concurrent use.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(ocrText string) ExtractedRide {
	text := cleanText(ocrText)
	lines := strings.Split(text, "\n")

	ride := ExtractedRide{
		Status:            model.RideCompleted,
		CommissionPercent: defaultCommissionPercent,
	}

	var confidences []float64

	if date, ok := parseDate(text); ok {
		ride.Date = &date
		confidences = append(confidences, 0.95)
	}
	if clock, ok := parseTime(text); ok {
		ride.Time = clock
		confidences = append(confidences, 0.95)
	}
	if minutes, ok := parseDuration(text); ok {
		ride.DurationMinutes = minutes
		confidences = append(confidences, 0.9)
	}
	if km, ok := parseDistance(text); ok {
		ride.DistanceKm = km
		confidences = append(confidences, 0.9)
	}

	if cancelledPattern.MatchString(text) {
		ride.Status = model.RideCancelledByPassenger
		ride.CancellationReason = "El pasajero canceló"
	}

	ride.PaymentMethod, ride.PaymentLabel = parsePaymentMethod(text)
	if ride.PaymentMethod != model.PaymentOther {
		confidences = append(confidences, 0.95)
	} else {
		confidences = append(confidences, 0.5)
	}

	parseFinancials(text, &ride)
	for _, amount := range []float64{ride.NetIncome, ride.Fare, ride.TotalReceived} {
		if amount > 0 {
			confidences = append(confidences, 0.9)
		}
	}

	ride.PassengerName, ride.DestinationAddress = parsePassengerAndDestination(lines)
	if ride.PassengerName != "" {
		confidences = append(confidences, 0.8)
	}

	ride.RatingGiven = parseRating(text)

	// Overall confidence averages the fields that were actually found, so
	// a sparse receipt with a clean date still scores high.
	if len(confidences) > 0 {
		var sum float64
		for _, c := range confidences {
			sum += c
		}
		ride.Confidence = sum / float64(len(confidences))
	}
	return ride
}

func cleanText(text string) string {
	text = blankLines.ReplaceAllString(text, "\n")
	text = spaceRuns.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

func parseDate(text string) (time.Time, bool) {
	match := datePattern.FindStringSubmatch(text)
	if match == nil {
		return time.Time{}, false
	}
	day, err := strconv.Atoi(match[1])
	if err != nil {
		return time.Time{}, false
	}
	month, ok := spanishMonths[strings.ToLower(match[2])]
	if !ok {
		return time.Time{}, false
	}
	year, err := strconv.Atoi(match[3])
	if err != nil {
		return time.Time{}, false
	}
	date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if date.Day() != day || date.Month() != month {
		// e.g. "31 feb" rolled over
		return time.Time{}, false
	}
	return date, true
}

// parseTime converts "07:52 a.m." / "04:01 p.m." to 24-hour "HH:mm".
func parseTime(text string) (string, bool) {
	match := timePattern.FindStringSubmatch(text)
	if match == nil {
		return "", false
	}
	hour, err := strconv.Atoi(match[1])
	if err != nil || hour > 12 {
		return "", false
	}
	period := strings.ReplaceAll(strings.ToLower(match[3]), ".", "")
	if period == "pm" && hour != 12 {
		hour += 12
	} else if period == "am" && hour == 12 {
		hour = 0
	}
	return strconv.Itoa(hour/10) + strconv.Itoa(hour%10) + ":" + match[2], true
}

func parsePaymentMethod(text string) (model.PaymentMethod, string) {
	if nequiPattern.MatchString(text) {
		return model.PaymentNequi, "Nequi"
	}
	if cashPattern.MatchString(text) {
		return model.PaymentCash, "Pago en efectivo"
	}
	return model.PaymentOther, "Otro"
}

// nameSkipWords are label fragments that disqualify a line from being the
// passenger name.
var nameSkipWords = []string{
	"duración", "distancia", "recib", "pagu", "tarifa",
	"total", "calific", "soporte", "ingresos", "cop",
	"pago", "nequi", "efectivo", "iva", "servicio",
}

// parsePassengerAndDestination scans the receipt lines for the destination
// (an address-looking line near the top) and the passenger name (one or two
// capitalized words that are not a known label). First match wins for each.
func parsePassengerAndDestination(lines []string) (name, destination string) {
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if len([]rune(line)) < 2 {
			continue
		}

		if destination == "" &&
			(destinationPrefix.MatchString(line) || destinationNumber.MatchString(line)) {
			destination = line
		}

		if name != "" {
			continue
		}
		lower := strings.ToLower(line)
		skip := false
		for _, word := range nameSkipWords {
			if strings.Contains(lower, word) {
				skip = true
				break
			}
		}
		if skip {
			continue
		}

		cleaned := strings.TrimSpace(ocrLinePrefix.ReplaceAllString(line, ""))
		if !namePattern.MatchString(cleaned) {
			continue
		}
		if len([]rune(cleaned)) <= 3 {
			continue
		}
		switch strings.ToLower(cleaned) {
		case "recibo", "pagué":
			continue
		}
		name = cleaned
	}
	return name, destination
}

// parseRating counts rating stars, capped at five. "Calificaste" with no
// visible stars means the ride was rated; assume five.
func parseRating(text string) int {
	stars := strings.Count(text, "★") + strings.Count(text, "⭐")
	if stars > 5 {
		return 5
	}
	if stars > 0 {
		return stars
	}
	if ratedPattern.MatchString(text) {
		return 5
	}
	return 0
}

func parseDuration(text string) (int, bool) {
	match := durationPattern.FindStringSubmatch(text)
	if match == nil {
		return 0, false
	}
	value, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, false
	}
	if strings.EqualFold(match[2], "hr") {
		value *= 60
	}
	return value, true
}

// parseDistance returns the distance in kilometers, applying the OCR
// decimal-separator correction: Spanish receipts write "5,9 km" and OCR
// often drops or misreads the comma, producing values ten times too large
// for urban rides.
func parseDistance(text string) (float64, bool) {
	match := distancePattern.FindStringSubmatch(text)
	if match == nil {
		return 0, false
	}
	raw := match[1]
	normalized := strings.NewReplacer(",", ".", " ", ".").Replace(raw)
	value, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		return 0, false
	}

	if strings.EqualFold(match[2], "metro") {
		return value / 1000, true
	}

	hasSeparator := strings.ContainsAny(raw, ",. ")
	if value >= 20 {
		value /= 10
	} else if value >= 10 && !hasSeparator {
		value /= 10
	}
	return value, true
}

// parseFinancials assigns currency amounts to their section labels by
// position: each amount belongs to the nearest label that precedes it,
// checked from the bottom of the receipt upward.
func parseFinancials(text string, ride *ExtractedRide) {
	if match := percentPattern.FindStringSubmatch(text); match != nil {
		if pct, err := strconv.ParseFloat(strings.ReplaceAll(match[1], ",", "."), 64); err == nil {
			ride.CommissionPercent = pct
		}
	}

	netIncomePos := labelPosition(netIncomeLabel, text)
	farePos := labelPosition(fareLabel, text)
	totalReceivedPos := labelPosition(totalReceivedLabel, text)
	commissionPos := labelPosition(commissionLabel, text)
	taxPos := labelPosition(taxLabel, text)
	totalPaidPos := labelPosition(totalPaidLabel, text)

	seen := map[string]bool{}
	for _, match := range currencyPattern.FindAllStringSubmatchIndex(text, -1) {
		raw := submatchText(text, match, 1)
		if raw == "" {
			raw = submatchText(text, match, 2)
		}
		value, ok := ParseAmount(raw)
		if !ok {
			continue
		}
		pos := match[0]

		switch {
		case totalPaidPos >= 0 && pos > totalPaidPos && !seen["total_paid"]:
			ride.TotalPaid = value
			seen["total_paid"] = true
		case taxPos >= 0 && pos > taxPos && !seen["tax"]:
			ride.Tax = value
			seen["tax"] = true
		case commissionPos >= 0 && pos > commissionPos && !seen["commission"]:
			ride.Commission = value
			seen["commission"] = true
		case totalReceivedPos >= 0 && pos > totalReceivedPos && !seen["total_received"]:
			ride.TotalReceived = value
			seen["total_received"] = true
		case farePos >= 0 && pos > farePos && !seen["fare"]:
			ride.Fare = value
			seen["fare"] = true
		case netIncomePos >= 0 && pos > netIncomePos && !seen["net_income"]:
			ride.NetIncome = value
			seen["net_income"] = true
		}
	}
}

func labelPosition(pattern *regexp.Regexp, text string) int {
	loc := pattern.FindStringIndex(text)
	if loc == nil {
		return -1
	}
	return loc[0]
}

func submatchText(text string, match []int, group int) string {
	start, end := match[2*group], match[2*group+1]
	if start < 0 {
		return ""
	}
	return text[start:end]
}

// ParseAmount parses a currency amount in either the Colombian format
// ("18.000,00" — dot thousands, comma decimal) or the US-style format
// InDriver also emits ("15,000.00"). The last separator followed by at most
// two digits is treated as the decimal point.
func ParseAmount(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}

	lastDot := strings.LastIndex(raw, ".")
	lastComma := strings.LastIndex(raw, ",")

	decimalSep := byte(0)
	if lastDot > lastComma {
		decimalSep = '.'
	} else if lastComma > lastDot {
		decimalSep = ','
	}

	normalized := raw
	if decimalSep != 0 {
		sepIdx := lastDot
		if decimalSep == ',' {
			sepIdx = lastComma
		}
		fraction := raw[sepIdx+1:]
		if len(fraction) >= 1 && len(fraction) <= 2 {
			normalized = strings.Map(dropSeparators, raw[:sepIdx]) + "." + fraction
		} else {
			// Separator groups of three digits are thousands markers.
			normalized = strings.Map(dropSeparators, raw)
		}
	}

	value, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

func dropSeparators(r rune) rune {
	if r == '.' || r == ',' {
		return -1
	}
	return r
}
