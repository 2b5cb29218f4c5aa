package app

import (
	"Samplepedia/common"
	"Samplepedia/dao"
	"Samplepedia/model"
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

var discordClient = &http.Client{Timeout: 10 * time.Second}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n] + "..."
	}
	return s
}

//announceTask posts a new task to the discord channel matching its
//difficulty. Failures are printed, never surfaced to the submitter.
func announceTask(task *dao.Task) {
	webhook := common.DiscordWebhooks[task.Difficulty]
	if webhook == "" {
		webhook = common.DiscordDefault
	}
	if webhook == "" {
		return
	}

	fields := []common.H{
		{"name": "Goal", "value": truncate(task.Goal, 200), "inline": false},
		{"name": "Difficulty", "value": task.Difficulty, "inline": true},
	}
	if tags := dao.StrCol(task.Tags).ToStringSlice(); len(tags) > 0 {
		fields = append(fields, common.H{"name": "Tags", "value": strings.Join(tags, ", "), "inline": true})
	}
	if task.DownloadLink != "" {
		fields = append(fields, common.H{
			"name": "Download", "value": "[Click here](" + task.DownloadLink + ")", "inline": true,
		})
	}
	if task.YoutubeID != "" {
		fields = append(fields, common.H{
			"name":   "Tutorial",
			"value":  "[Watch on YouTube](https://www.youtube.com/watch?v=" + task.YoutubeID + ")",
			"inline": true,
		})
	}

	embed := common.H{
		"title":       "New Training Sample: " + truncate(task.Sha256, 16),
		"url":         common.WebHttp + "/sample/" + task.Sha256,
		"description": truncate(task.Description, 200),
		"color":       model.DifficultyColor(task.Difficulty),
		"fields":      fields,
		"footer":      common.H{"text": "Samplepedia • Malware Training Samples"},
	}
	if task.Image != "" {
		embed["thumbnail"] = common.H{"url": task.Image}
	}

	payload, err := json.Marshal(common.H{
		"embeds":   []common.H{embed},
		"username": "Samplepedia Bot",
	})
	if err != nil {
		return
	}
	resp, err := discordClient.Post(webhook, "application/json", bytes.NewReader(payload))
	if err != nil {
		fmt.Println("discord notification failed for", task.Sha256, err.Error())
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		fmt.Println("discord webhook answered", resp.StatusCode, "for", task.Sha256)
	}
}
