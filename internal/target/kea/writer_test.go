package kea

import (
	"encoding/json"
	"io"
	"strings"
	"testing"

	"decanter/internal/core/migrate"
	"decanter/internal/core/subnet"

	"github.com/go-git/go-billy/v5/memfs"
	"gopkg.in/yaml.v3"
)

func testReservations() []migrate.ReservationRecord {
	return []migrate.ReservationRecord{
		{Uuid: "u1", SubnetId: "lan", Mac: "00:11:22:33:44:55", Ipaddr: "192.168.1.10", Hostname: "printer", Descr: "front desk"},
		{Uuid: "u2", SubnetId: "opt1", Mac: "aa:bb:cc:dd:ee:ff", Ipaddr: "10.0.0.9"},
		{Uuid: "u3", SubnetId: "lan", Mac: "00:11:22:33:44:66", Ipaddr: "192.168.1.11"},
	}
}

func testMatcher(t *testing.T) *subnet.SubnetMatcher {
	t.Helper()
	m, warnings := subnet.NewSubnetMatcher([]subnet.SubnetRecord{
		{Id: "lan", Network: "192.168.1.0", Mask: "24"},
		{Id: "opt1", Network: "10.0.0.0", Mask: "255.0.0.0"},
	})
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	return m
}

func TestRenderGroupsBySubnet(t *testing.T) {
	w := NewKeaWriter(memfs.New())

	out, err := w.Render(testReservations(), testMatcher(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var cfg Config
	if err := json.Unmarshal(out, &cfg); err != nil {
		t.Fatalf("output is not valid json: %v", err)
	}

	if len(cfg.Dhcp4.Subnet4) != 2 {
		t.Fatalf("expected 2 subnet groups, got %+v", cfg.Dhcp4.Subnet4)
	}
	lan := cfg.Dhcp4.Subnet4[0]
	if lan.Id != 1 || lan.Subnet != "192.168.1.0/24" || lan.UserContext.SourceSubnet != "lan" {
		t.Fatalf("unexpected first group: %+v", lan)
	}
	if len(lan.Reservations) != 2 {
		t.Fatalf("expected 2 lan reservations, got %+v", lan.Reservations)
	}
	if lan.Reservations[0].HwAddress != "00:11:22:33:44:55" || lan.Reservations[1].HwAddress != "00:11:22:33:44:66" {
		t.Fatalf("input order not preserved within group: %+v", lan.Reservations)
	}

	// every ReservationRecord field must survive serialization
	r := lan.Reservations[0]
	if r.IpAddress != "192.168.1.10" || r.Hostname != "printer" {
		t.Fatalf("fields lost: %+v", r)
	}
	if r.UserContext == nil || r.UserContext.Uuid != "u1" || r.UserContext.SourceSubnet != "lan" || r.UserContext.Description != "front desk" {
		t.Fatalf("user-context lost: %+v", r.UserContext)
	}
}

func TestRenderOmitsAbsentOptionals(t *testing.T) {
	w := NewKeaWriter(memfs.New())

	out, err := w.Render(testReservations(), testMatcher(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s := string(out)
	if strings.Contains(s, `"hostname": ""`) || strings.Contains(s, `"description": ""`) {
		t.Fatalf("absent optionals serialized as empty values:\n%s", s)
	}
}

func TestRenderRejectsUnknownSubnetId(t *testing.T) {
	w := NewKeaWriter(memfs.New())

	records := []migrate.ReservationRecord{
		{Uuid: "u9", SubnetId: "ghost", Mac: "00:11:22:33:44:55", Ipaddr: "192.168.1.10"},
	}
	if _, err := w.Render(records, testMatcher(t)); err == nil {
		t.Fatalf("expected error for subnet id the matcher does not know")
	}
}

func TestRenderEmpty(t *testing.T) {
	w := NewKeaWriter(memfs.New())

	out, err := w.Render(nil, testMatcher(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var cfg Config
	if err := json.Unmarshal(out, &cfg); err != nil {
		t.Fatalf("output is not valid json: %v", err)
	}
	if len(cfg.Dhcp4.Subnet4) != 0 {
		t.Fatalf("expected empty subnet list, got %+v", cfg.Dhcp4.Subnet4)
	}
}

func TestRenderYaml(t *testing.T) {
	w := NewKeaWriter(memfs.New())

	out, err := w.RenderYaml(testReservations())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var doc struct {
		Reservations []migrate.ReservationRecord `yaml:"reservations"`
	}
	if err := yaml.Unmarshal(out, &doc); err != nil {
		t.Fatalf("output is not valid yaml: %v", err)
	}
	if len(doc.Reservations) != 3 {
		t.Fatalf("expected 3 reservations, got %+v", doc.Reservations)
	}
	if doc.Reservations[0].Uuid != "u1" || doc.Reservations[2].Mac != "00:11:22:33:44:66" {
		t.Fatalf("records not round-tripped: %+v", doc.Reservations)
	}
}

func TestWriteFileAtomic(t *testing.T) {
	fs := memfs.New()
	w := NewKeaWriter(fs)

	if err := w.WriteFile("out/kea.json", []byte("{}\n")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := fs.Open("out/kea.json")
	if err != nil {
		t.Fatalf("output file missing: %v", err)
	}
	defer f.Close()
	b, err := io.ReadAll(f)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(b) != "{}\n" {
		t.Fatalf("unexpected content: %q", b)
	}

	if _, err := fs.Stat("out/kea.json.tmp"); err == nil {
		t.Fatalf("temp file left behind")
	}
}
