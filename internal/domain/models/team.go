package models

type Team struct {
	Name      string `db:"name"`
	GroupName string `db:"group_name"`
}
