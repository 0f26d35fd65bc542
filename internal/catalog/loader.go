// Package catalog loads the KPI metadata catalog the assistant reads from.
//
// A location is a local .json or .xlsx file, an http(s) URL or an
// s3://bucket/key object. JSON is an array of KPI objects. Spreadsheets use
// the first sheet with a header row naming the columns.
package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/andresuchdata/fulfillment-bi/backend-go/internal/domain"
	"github.com/andresuchdata/fulfillment-bi/backend-go/internal/storage"
)

const defaultHTTPTimeout = 10 * time.Second

// Loader reads a catalog from a location. Storage is only needed for s3:// locations.
type Loader struct {
	Storage    storage.ObjectStorage
	HTTPClient *http.Client
}

func NewLoader(store storage.ObjectStorage) *Loader {
	return &Loader{
		Storage:    store,
		HTTPClient: &http.Client{Timeout: defaultHTTPTimeout},
	}
}

// Load fetches and decodes the catalog at location.
func (l *Loader) Load(ctx context.Context, location string) ([]domain.KPI, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, errors.New("catalog location is empty")
	}

	var (
		data []byte
		name string
		err  error
	)

	switch {
	case strings.HasPrefix(location, "s3://"):
		data, name, err = l.readObject(ctx, location)
	case strings.HasPrefix(location, "http://"), strings.HasPrefix(location, "https://"):
		data, name, err = l.fetch(ctx, location)
	default:
		name = location
		data, err = os.ReadFile(location)
		err = errors.Wrapf(err, "read catalog file %s", location)
	}
	if err != nil {
		return nil, err
	}

	return Decode(data, name)
}

func (l *Loader) readObject(ctx context.Context, location string) ([]byte, string, error) {
	if l.Storage == nil {
		return nil, "", errors.Errorf("object storage is not configured for %s", location)
	}

	u, err := url.Parse(location)
	if err != nil {
		return nil, "", errors.Wrapf(err, "parse catalog location %s", location)
	}
	if u.Host != l.Storage.Bucket() {
		return nil, "", errors.Errorf("catalog bucket %q does not match configured bucket %q", u.Host, l.Storage.Bucket())
	}

	key := strings.TrimPrefix(u.Path, "/")
	data, err := l.Storage.ReadObject(ctx, key)
	if err != nil {
		return nil, "", errors.Wrapf(err, "read catalog object %s", location)
	}
	return data, key, nil
}

func (l *Loader) fetch(ctx context.Context, location string) ([]byte, string, error) {
	client := l.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, "", errors.Wrapf(err, "build catalog request %s", location)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, "", errors.Wrapf(err, "fetch catalog %s", location)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", errors.Errorf("fetch catalog %s: unexpected status %d", location, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", errors.Wrapf(err, "read catalog response %s", location)
	}

	name := location
	if u, err := url.Parse(location); err == nil {
		name = u.Path
	}
	return data, name, nil
}

// Decode parses catalog content. The name's extension picks the format; anything
// other than .xlsx is treated as JSON.
func Decode(data []byte, name string) ([]domain.KPI, error) {
	if strings.EqualFold(path.Ext(name), ".xlsx") {
		return decodeXLSX(data)
	}

	var kpis []domain.KPI
	if err := json.Unmarshal(data, &kpis); err != nil {
		return nil, errors.Wrap(err, "decode catalog json")
	}
	return kpis, nil
}

func decodeXLSX(data []byte) ([]domain.KPI, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "open catalog xlsx")
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("catalog xlsx has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, errors.Wrapf(err, "read rows from sheet %s", sheets[0])
	}
	if len(rows) == 0 {
		return nil, nil
	}

	columns := make(map[string]int, len(rows[0]))
	for i, h := range rows[0] {
		columns[strings.ToLower(strings.TrimSpace(h))] = i
	}
	if _, ok := columns["name"]; !ok {
		return nil, errors.New("catalog xlsx header has no name column")
	}

	kpis := make([]domain.KPI, 0, len(rows)-1)
	for n, row := range rows[1:] {
		cell := func(col string) string {
			i, ok := columns[col]
			if !ok || i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}

		if cell("name") == "" {
			continue
		}

		kpi, err := rowToKPI(cell)
		if err != nil {
			return nil, errors.Wrapf(err, "catalog xlsx row %d", n+2)
		}
		kpis = append(kpis, kpi)
	}

	return kpis, nil
}

func rowToKPI(cell func(string) string) (domain.KPI, error) {
	kpi := domain.KPI{
		Name:        cell("name"),
		Unit:        cell("unit"),
		Section:     cell("section"),
		Description: cell("description"),
		Trend:       cell("trend"),
		Priority:    cell("priority"),
		Benchmark:   cell("benchmark"),
	}

	if v := cell("id"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			return kpi, errors.Wrapf(err, "id %q", v)
		}
		kpi.ID = id
	}

	if v := cell("value"); v != "" {
		value, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return kpi, errors.Wrapf(err, "value %q", v)
		}
		kpi.Value = value
	}

	if v := cell("target"); v != "" {
		target, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return kpi, errors.Wrapf(err, "target %q", v)
		}
		kpi.Target = &target
	}

	// history is a ;-separated list of points
	if v := cell("history"); v != "" {
		for _, p := range strings.Split(v, ";") {
			point, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
			if err != nil {
				return kpi, errors.Wrapf(err, "history point %q", p)
			}
			kpi.History = append(kpi.History, point)
		}
	}

	return kpi, nil
}
