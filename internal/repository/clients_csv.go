// Package repository holds the seed data every module starts from
// and the CSV import/export used for the client list. Collections
// themselves live in memory; nothing here is consulted after startup
// except through an explicit import or export action.
package repository

import (
	"encoding/csv"
	"os"
	"strconv"

	"asthroapp/internal/model"
)

// LoadClientsCSV reads a client list exported earlier. Short or
// malformed rows are skipped, matching the tolerant import the rest
// of the app expects.
func LoadClientsCSV(path string) ([]model.Client, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	clients := make([]model.Client, 0, len(records))
	for _, record := range records {
		if len(record) < 7 {
			continue
		}

		id, err := strconv.Atoi(record[0])
		if err != nil {
			continue
		}

		client := model.Client{
			ID:         id,
			FirstName:  record[1],
			LastName:   record[2],
			DocumentID: record[3],
			Email:      record[4],
			Phone:      record[5],
			Status:     model.Activity(record[6]),
		}
		client.Recompute()
		clients = append(clients, client)
	}

	return clients, nil
}

// SaveClientsCSV writes the full client list to path.
func SaveClientsCSV(path string, clients []model.Client) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	for _, c := range clients {
		record := []string{
			strconv.Itoa(c.ID),
			c.FirstName,
			c.LastName,
			c.DocumentID,
			c.Email,
			c.Phone,
			string(c.Status),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	return nil
}
