package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nepscript/goodsync/internal/config"
	"github.com/nepscript/goodsync/internal/good"
	"github.com/nepscript/goodsync/internal/hoyolab"
)

const testCookies = "ltoken_v2=v2_abc;ltuid_v2=123456;"

// newVendorMock serves a tiny calculator: two avatars, one weapon, and a
// fixed inventory. batch_compute answers are derived from the request items
// so probe and compute calls both get consistent slots.
func newVendorMock(t *testing.T) *httptest.Server {
	t.Helper()

	consumeFor := func(item map[string]any) map[string]any {
		slot := map[string]any{
			"avatar_consume":       []any{},
			"avatar_skill_consume": []any{},
			"weapon_consume":       []any{},
		}
		switch int64(asFloat(item["avatar_id"])) {
		case 10000002:
			slot["avatar_consume"] = []any{
				material(104101, "Agnidus Agate Sliver", 100, 60),
			}
			slot["avatar_skill_consume"] = []any{
				material(104303, "Teachings of Freedom", 10, 2),
			}
		case 10000046:
			slot["avatar_consume"] = []any{
				material(104101, "Agnidus Agate Sliver", 40, 10),
			}
		}
		if weapon, ok := item["weapon"].(map[string]any); ok && asFloat(weapon["id"]) != 0 {
			slot["weapon_consume"] = []any{
				material(114001, "Tile of Decarabian's Tower", 9, 9),
			}
		}
		return slot
	}

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/avatar/list":
			writeEnvelope(w, map[string]any{"list": []any{
				map[string]any{"id": 10000002, "name": "Kamisato Ayaka", "element_attr_id": 4, "skill_list": []any{map[string]any{"group_id": 1}}},
				map[string]any{"id": 10000046, "name": "Hu Tao", "element_attr_id": 1, "skill_list": []any{map[string]any{"group_id": 2}}},
			}})
		case "/weapon/list":
			writeEnvelope(w, map[string]any{"list": []any{
				map[string]any{"id": 11509, "name": "Mistsplitter Reforged", "max_level": 90},
			}})
		case "/batch_compute":
			var req struct {
				Items []map[string]any `json:"items"`
				UID   string           `json:"uid"`
			}
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "800000001", req.UID)

			slots := make([]any, 0, len(req.Items))
			for _, item := range req.Items {
				slots = append(slots, consumeFor(item))
			}
			writeEnvelope(w, map[string]any{
				"items": slots,
				"overall_consume": []any{
					material(104101, "Agnidus Agate Sliver", 100, 60),
					material(104303, "Teachings of Freedom", 10, 2),
					material(114001, "Tile of Decarabian's Tower", 9, 9),
					material(202, "Mora", 1000000, 0),
					material(900002, "sango pearl", 3, 0),
					material(900001, "Sango Pearl", 5, 0),
				},
				"available_material": []any{
					material(104101, "Agnidus Agate Sliver", 3, 0),
					material(114001, "Tile of Decarabian's Tower", 2, 0),
				},
			})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func material(id int64, name string, num, lack int64) map[string]any {
	return map[string]any{"id": id, "name": name, "num": num, "lack_num": lack}
}

func writeEnvelope(w http.ResponseWriter, data any) {
	_ = json.NewEncoder(w).Encode(map[string]any{"retcode": 0, "message": "OK", "data": data})
}

func asFloat(v any) float64 {
	f, _ := v.(float64)
	return f
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Cookies: testCookies,
		UID:     "800000001",
		Region:  "os_asia",
		OutPath: filepath.Join(t.TempDir(), "good_materials.json"),
		Count:   2,
		Timeout: 5 * time.Second,
	}
}

func TestRun_WritesGoodExport(t *testing.T) {
	server := newVendorMock(t)
	defer server.Close()

	cfg := testConfig(t)
	var progress bytes.Buffer
	err := Run(context.Background(), Options{Config: cfg, BaseURL: server.URL, Out: &progress})
	require.NoError(t, err)

	data, err := os.ReadFile(cfg.OutPath)
	require.NoError(t, err)

	var doc good.Document
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "GOOD", doc.Format)
	assert.Equal(t, 2, doc.Version)

	// owned = num - lack_num + available
	assert.Equal(t, int64(43), doc.Materials["AgnidusAgateSliver"])
	assert.Equal(t, int64(8), doc.Materials["TeachingsOfFreedom"])
	assert.Equal(t, int64(2), doc.Materials["TileOfDecarabiansTower"])

	// two vendor rows, one canonical key: 5 + 3
	assert.Equal(t, int64(8), doc.Materials["SangoPearl"])

	// excluded type never reaches the export
	assert.NotContains(t, doc.Materials, "Mora")

	assert.Contains(t, progress.String(), "Step 6/6")
}

func TestRun_Idempotent(t *testing.T) {
	server := newVendorMock(t)
	defer server.Close()

	cfg := testConfig(t)
	opts := Options{Config: cfg, BaseURL: server.URL, Out: &bytes.Buffer{}}

	require.NoError(t, Run(context.Background(), opts))
	first, err := os.ReadFile(cfg.OutPath)
	require.NoError(t, err)

	require.NoError(t, Run(context.Background(), opts))
	second, err := os.ReadFile(cfg.OutPath)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRun_VerboseSummaries(t *testing.T) {
	server := newVendorMock(t)
	defer server.Close()

	cfg := testConfig(t)
	cfg.Verbose = true

	var progress bytes.Buffer
	require.NoError(t, Run(context.Background(), Options{Config: cfg, BaseURL: server.URL, Out: &progress}))

	out := progress.String()
	assert.Contains(t, out, "Roster Cover")
	assert.Contains(t, out, "Inventory Tally")
	assert.Contains(t, out, "GOOD Export")
}

func TestRun_AuthFailureWritesNothing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = fmt.Fprint(w, `{"retcode":-100,"message":"Please login","data":null}`)
	}))
	defer server.Close()

	cfg := testConfig(t)
	err := Run(context.Background(), Options{Config: cfg, BaseURL: server.URL, Out: &bytes.Buffer{}})
	require.Error(t, err)

	var authErr *hoyolab.AuthError
	assert.ErrorAs(t, err, &authErr)
	assert.NoFileExists(t, cfg.OutPath)
}

func TestRun_RemoteFailureWritesNothing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	cfg := testConfig(t)
	err := Run(context.Background(), Options{Config: cfg, BaseURL: server.URL, Out: &bytes.Buffer{}})
	require.Error(t, err)

	var reqErr *hoyolab.RequestError
	assert.ErrorAs(t, err, &reqErr)
	assert.NoFileExists(t, cfg.OutPath)
}

func TestRun_UnwritableOutput(t *testing.T) {
	server := newVendorMock(t)
	defer server.Close()

	cfg := testConfig(t)
	cfg.OutPath = filepath.Join(t.TempDir(), "missing", "good.json")

	err := Run(context.Background(), Options{Config: cfg, BaseURL: server.URL, Out: &bytes.Buffer{}})
	require.Error(t, err)

	var writeErr *good.WriteError
	assert.ErrorAs(t, err, &writeErr)
}
