// internals/features/stats/model/site_stat_model.go
package model

import "time"

// SiteStatModel: compteurs globaux du site, une ligne par clé.
type SiteStatModel struct {
	SiteStatKey       string    `gorm:"column:site_stat_key;type:varchar(40);primaryKey" json:"site_stat_key"`
	SiteStatVisits    int64     `gorm:"column:site_stat_visits;not null;default:0" json:"site_stat_visits"`
	SiteStatUpdatedAt time.Time `gorm:"column:site_stat_updated_at;autoUpdateTime" json:"site_stat_updated_at"`
}

func (SiteStatModel) TableName() string {
	return "site_stats"
}

// clé unique du compteur de visites
const GlobalStatKey = "global"
