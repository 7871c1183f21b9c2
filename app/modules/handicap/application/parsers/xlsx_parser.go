package parsers

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	sharedtypes "github.com/mulligan-crew/golftrip/app/shared/types"
)

// ParsedScore is one row of an uploaded scorecard sheet.
type ParsedScore struct {
	PlayerID sharedtypes.PlayerID
	Score    sharedtypes.Score
}

// ParseScorecardXLSX reads an uploaded scorecard workbook. The first sheet
// must have a header row containing "Player" and "Score" columns; every
// following non-empty row is one player's round total.
func ParseScorecardXLSX(data []byte) ([]ParsedScore, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open XLSX file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("XLSX file has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", sheets[0])
	}

	playerCol, scoreCol, err := findHeaderColumns(rows[0])
	if err != nil {
		return nil, err
	}

	var parsed []ParsedScore
	for i, row := range rows[1:] {
		if len(row) <= playerCol || len(row) <= scoreCol {
			continue
		}

		player := strings.TrimSpace(row[playerCol])
		rawScore := strings.TrimSpace(row[scoreCol])
		if player == "" && rawScore == "" {
			continue
		}
		if player == "" {
			return nil, fmt.Errorf("row %d has a score but no player", i+2)
		}

		score, err := strconv.Atoi(rawScore)
		if err != nil {
			return nil, fmt.Errorf("row %d has invalid score %q: %w", i+2, rawScore, err)
		}

		parsed = append(parsed, ParsedScore{
			PlayerID: sharedtypes.PlayerID(player),
			Score:    sharedtypes.Score(score),
		})
	}

	if len(parsed) == 0 {
		return nil, fmt.Errorf("no score rows found")
	}

	return parsed, nil
}

func findHeaderColumns(header []string) (playerCol, scoreCol int, err error) {
	playerCol, scoreCol = -1, -1
	for i, cell := range header {
		switch strings.ToLower(strings.TrimSpace(cell)) {
		case "player", "email":
			playerCol = i
		case "score", "total":
			scoreCol = i
		}
	}
	if playerCol == -1 || scoreCol == -1 {
		return 0, 0, fmt.Errorf("header row must contain Player and Score columns")
	}
	return playerCol, scoreCol, nil
}
