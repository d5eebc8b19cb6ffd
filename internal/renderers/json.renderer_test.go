package renderers

import (
	"bytes"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

func TestJSONRenderer(t *testing.T) {
	var buf bytes.Buffer
	if err := (&JSONRenderer{Indent: "  "}).Render(&buf, sampleReport()); err != nil {
		t.Fatalf("Render: %v", err)
	}

	var doc struct {
		Host struct {
			Hostname string `json:"hostname"`
		} `json:"host"`
		CPU struct {
			Alert bool `json:"alert"`
		} `json:"cpu"`
		Disk struct {
			Metric struct {
				Partitions []struct {
					Metric struct {
						MountPoint string `json:"mount_point"`
					} `json:"metric"`
					Alert bool `json:"alert"`
				} `json:"partitions"`
			} `json:"metric"`
			Alert bool `json:"alert"`
		} `json:"disk"`
		Uptime struct {
			BootTime       string `json:"boot_time"`
			ElapsedSeconds int64  `json:"elapsed_seconds"`
			Days           int64  `json:"days"`
			Hours          int64  `json:"hours"`
			Minutes        int64  `json:"minutes"`
		} `json:"uptime"`
		OverallOK bool     `json:"overall_ok"`
		Issues    []string `json:"issues"`
	}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}
	if doc.Host.Hostname != "vm-01" || !doc.CPU.Alert || doc.OverallOK {
		t.Errorf("unexpected document: %+v", doc)
	}
	if len(doc.Disk.Metric.Partitions) != 2 || !doc.Disk.Metric.Partitions[0].Alert || doc.Disk.Metric.Partitions[1].Metric.MountPoint != "/data" {
		t.Errorf("unexpected partitions: %+v", doc.Disk.Metric.Partitions)
	}
	if len(doc.Issues) != 2 {
		t.Errorf("issues = %q", doc.Issues)
	}
	up := doc.Uptime
	if up.ElapsedSeconds != 185250 || up.Days != 2 || up.Hours != 3 || up.Minutes != 27 || up.BootTime != "2025-06-01T08:15:00Z" {
		t.Errorf("unexpected uptime: %+v", up)
	}
}

func TestJSONRendererEmptyIssuesIsArray(t *testing.T) {
	var buf bytes.Buffer
	if err := (&JSONRenderer{}).Render(&buf, healthyReport()); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(buf.String(), `"issues":[]`) {
		t.Errorf("expected empty issues array: %s", buf.String())
	}
}

func TestYAMLRenderer(t *testing.T) {
	var buf bytes.Buffer
	if err := (&YAMLRenderer{}).Render(&buf, sampleReport()); err != nil {
		t.Fatalf("Render: %v", err)
	}

	var doc map[string]any
	if err := yaml.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if doc["overall_ok"] != false {
		t.Errorf("overall_ok = %v", doc["overall_ok"])
	}
	host, ok := doc["host"].(map[string]any)
	if !ok || host["hostname"] != "vm-01" {
		t.Errorf("host = %v", doc["host"])
	}
	uptime, ok := doc["uptime"].(map[string]any)
	if !ok || uptime["elapsed_seconds"] != 185250 || uptime["days"] != 2 {
		t.Errorf("uptime = %v", doc["uptime"])
	}
}
