package kea

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"decanter/internal/core/migrate"
	"decanter/internal/core/subnet"

	"github.com/go-git/go-billy/v5"
	"gopkg.in/yaml.v3"
)

func NewKeaWriter(fs billy.Filesystem) *KeaWriter {
	return &KeaWriter{fs: fs}
}

type KeaWriter struct {
	fs billy.Filesystem
}

// Render serializes the reservations as a Kea Dhcp4 fragment, grouped
// by source subnet in first-seen reservation order. Within a group the
// input order is kept untouched. Every reservation must reference a
// subnet id the matcher retained; an unknown id is an error rather
// than a group with no subnet value.
func (w *KeaWriter) Render(reservations []migrate.ReservationRecord, matcher subnet.SubnetMatcherHandler) ([]byte, error) {
	cfg := Config{Dhcp4: Dhcp4{Subnet4: []Subnet4{}}}
	index := map[string]int{}

	for _, r := range reservations {
		pos, ok := index[r.SubnetId]
		if !ok {
			cidr, ok := matcher.CIDR(r.SubnetId)
			if !ok {
				return nil, fmt.Errorf("reservation %s: subnet id %q not known to the matcher", r.Uuid, r.SubnetId)
			}
			cfg.Dhcp4.Subnet4 = append(cfg.Dhcp4.Subnet4, Subnet4{
				Id:           len(cfg.Dhcp4.Subnet4) + 1,
				Subnet:       cidr,
				UserContext:  &SubnetContext{SourceSubnet: r.SubnetId},
				Reservations: []Reservation{},
			})
			pos = len(cfg.Dhcp4.Subnet4) - 1
			index[r.SubnetId] = pos
		}

		cfg.Dhcp4.Subnet4[pos].Reservations = append(cfg.Dhcp4.Subnet4[pos].Reservations, Reservation{
			HwAddress: r.Mac,
			IpAddress: r.Ipaddr,
			Hostname:  r.Hostname,
			UserContext: &ReservationContext{
				Uuid:         r.Uuid,
				SourceSubnet: r.SubnetId,
				Description:  r.Descr,
			},
		})
	}

	b, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}

// RenderYaml serializes the flat reservation list, for consumers that
// want the records rather than a Kea document.
func (w *KeaWriter) RenderYaml(reservations []migrate.ReservationRecord) ([]byte, error) {
	doc := struct {
		Reservations []migrate.ReservationRecord `yaml:"reservations"`
	}{Reservations: reservations}
	return yaml.Marshal(doc)
}

// WriteFile writes data to path via a temp file and rename, so a
// half-written output never replaces an existing file.
func (w *KeaWriter) WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if dir != "." {
		if err := w.fs.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	tmp := path + ".tmp"
	f, err := w.fs.Create(tmp)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return w.fs.Rename(tmp, path)
}
