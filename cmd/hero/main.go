package main

import "github.com/ashutosh-gunjal-001/gamified-daily-task-manager/cmd/hero/root"

func main() {
	root.Execute()
}
