package notify

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const (
	notificationDBRelativePath = "Library/Group Containers/group.com.apple.usernoted/db2/db"
	appleReferenceUnix         = int64(978307200) // 2001-01-01T00:00:00Z
)

// Delivered is one delivered notification from the Notification Center
// store.
type Delivered struct {
	// AppID is the bundle identifier of the posting application.
	AppID string
	// DeliveredAt is the delivery time.
	DeliveredAt time.Time
	// Presented reports whether the notification was shown on screen
	// rather than delivered silently.
	Presented bool
}

// AppSummary aggregates delivered notifications per application.
type AppSummary struct {
	AppID         string
	Count         int
	LastDelivered time.Time
}

// ListDelivered returns recently delivered notifications, newest first.
// Reading requires Full Disk Access for the calling process.
func ListDelivered(limit int) ([]Delivered, error) {
	if limit <= 0 {
		limit = 50
	}
	if limit > 500 {
		limit = 500
	}

	query := fmt.Sprintf(`
SELECT
	COALESCE(a.identifier, ''),
	COALESCE(r.delivered_date, 0),
	COALESCE(r.presented, 0)
FROM record r
LEFT JOIN app a ON a.app_id = r.app_id
WHERE COALESCE(r.delivered_date, 0) > 0
ORDER BY r.delivered_date DESC
LIMIT %d;
`, limit)

	records, err := runNotificationQuery(query)
	if err != nil {
		return nil, err
	}

	delivered := make([]Delivered, 0, len(records))
	for _, row := range records {
		if len(row) < 3 {
			continue
		}
		delivered = append(delivered, Delivered{
			AppID:       row[0],
			DeliveredAt: appleSecondsToTime(row[1]),
			Presented:   parseBoolInt(row[2]),
		})
	}
	return delivered, nil
}

// DeliveredSummary returns per-application delivery counts, most recently
// active first.
func DeliveredSummary(limit int) ([]AppSummary, error) {
	if limit <= 0 {
		limit = 25
	}

	query := fmt.Sprintf(`
SELECT
	COALESCE(a.identifier, ''),
	COUNT(r.rec_id),
	COALESCE(MAX(r.delivered_date), 0)
FROM record r
LEFT JOIN app a ON a.app_id = r.app_id
WHERE COALESCE(r.delivered_date, 0) > 0
GROUP BY a.identifier
ORDER BY MAX(r.delivered_date) DESC
LIMIT %d;
`, limit)

	records, err := runNotificationQuery(query)
	if err != nil {
		return nil, err
	}

	summaries := make([]AppSummary, 0, len(records))
	for _, row := range records {
		if len(row) < 3 {
			continue
		}
		count, _ := strconv.Atoi(row[1])
		summaries = append(summaries, AppSummary{
			AppID:         row[0],
			Count:         count,
			LastDelivered: appleSecondsToTime(row[2]),
		})
	}
	return summaries, nil
}

func runNotificationQuery(query string) ([][]string, error) {
	db, err := openNotificationDB()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("notify: sqlite query failed: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("notify: reading sqlite columns failed: %w", err)
	}

	records := make([][]string, 0, 64)
	for rows.Next() {
		values := make([]any, len(columns))
		valuePointers := make([]any, len(columns))
		for i := range values {
			valuePointers[i] = &values[i]
		}
		if err := rows.Scan(valuePointers...); err != nil {
			return nil, fmt.Errorf("notify: scanning sqlite row failed: %w", err)
		}

		record := make([]string, len(columns))
		for i, value := range values {
			switch typed := value.(type) {
			case nil:
				record[i] = ""
			case []byte:
				record[i] = string(typed)
			default:
				record[i] = fmt.Sprint(typed)
			}
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("notify: iterating sqlite rows failed: %w", err)
	}

	return records, nil
}

func openNotificationDB() (*sql.DB, error) {
	dbPath, err := notificationDBPath()
	if err != nil {
		return nil, err
	}

	dsn := fmt.Sprintf("file:%s?mode=ro&_busy_timeout=5000", strings.ReplaceAll(dbPath, " ", "%20"))
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("notify: opening sqlite database failed: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("notify: connecting to sqlite database failed: %w", err)
	}
	return db, nil
}

func notificationDBPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("notify: unable to resolve home directory: %w", err)
	}
	path := filepath.Join(home, notificationDBRelativePath)
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("notify: notification database unavailable at %s: %w", path, err)
	}
	return path, nil
}

// appleSecondsToTime converts a Core Data absolute timestamp (seconds since
// 2001-01-01 UTC, possibly fractional) to a time.Time.
func appleSecondsToTime(raw string) time.Time {
	secs, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || secs <= 0 {
		return time.Time{}
	}
	whole := int64(secs)
	frac := secs - float64(whole)
	return time.Unix(appleReferenceUnix+whole, int64(frac*float64(time.Second))).UTC()
}

func parseBoolInt(raw string) bool {
	i, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	return i != 0
}
