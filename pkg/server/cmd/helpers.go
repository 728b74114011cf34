/* Copyright 2025 Fieldsync Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package cmd

import (
	"flag"
	"fmt"

	"github.com/fieldsync/fieldsync/pkg/clock"
	"github.com/fieldsync/fieldsync/pkg/server/app"
	"github.com/fieldsync/fieldsync/pkg/server/config"
	"github.com/fieldsync/fieldsync/pkg/server/database"
	"github.com/fieldsync/fieldsync/pkg/server/log"
	"github.com/fieldsync/fieldsync/pkg/server/notif"
	"gorm.io/gorm"
)

// notifQueueSize bounds the number of pending notifications. Past this,
// new notifications are dropped rather than blocking order creation.
const notifQueueSize = 64

func initDB(cfg config.Config) *gorm.DB {
	db := database.Open(database.OpenParams{
		DatabaseURL: cfg.DatabaseURL,
		DBPath:      cfg.DBPath,
		LogLevel:    cfg.LogLevel,
	})
	database.InitSchema(db)

	return db
}

func getNotifBackend(cfg config.Config) notif.Backend {
	if cfg.NotifyWebhookURL != "" {
		log.Debug("Notification webhook configured")
		return notif.NewWebhookBackend(cfg.NotifyWebhookURL)
	}

	log.Debug("No notification webhook configured, using StdoutBackend for notifications")
	return notif.NewStdoutBackend()
}

func initApp(cfg config.Config) (app.App, *notif.Dispatcher) {
	db := initDB(cfg)
	dispatcher := notif.NewDispatcher(getNotifBackend(cfg), notifQueueSize)

	return app.App{
		DB:       db,
		Clock:    clock.New(),
		Notifier: dispatcher,
		Port:     cfg.Port,
		DBPath:   cfg.DBPath,
	}, dispatcher
}

// printFlags prints flags with -- prefix for consistency with CLI
func printFlags(fs *flag.FlagSet) {
	fs.VisitAll(func(f *flag.Flag) {
		fmt.Printf("  --%s", f.Name)

		// Print type hint for non-boolean flags
		name, usage := flag.UnquoteUsage(f)
		if name != "" {
			fmt.Printf(" %s", name)
		}
		fmt.Println()

		// Print usage description with indentation
		if usage != "" {
			fmt.Printf("    \t%s", usage)
			if f.DefValue != "" && f.DefValue != "false" {
				fmt.Printf(" (default: %s)", f.DefValue)
			}
			fmt.Println()
		}
	})
}

// setupFlagSet creates a FlagSet with standard usage format
func setupFlagSet(name, usageCmd string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	fs.Usage = func() {
		fmt.Printf(`Usage:
  %s [flags]

Flags:
`, usageCmd)
		printFlags(fs)
	}
	return fs
}
