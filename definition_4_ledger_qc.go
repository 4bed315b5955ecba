package dayscheduler

// allowsQC tells if the resource may take the task under QC pairing.
// Tasks without the QC key are always allowed.
func (l *Ledger) allowsQC(task *Task, resourceName string) bool {
	if !task.IsQC() {
		return true
	}

	pairedWith, exists := l.qcResource[BaseTaskName(task.Name)]
	if !exists {
		return true
	}

	return pairedWith == resourceName
}

// pairQC is called on commit, the first QC task of a base name fixes the resource.
func (l *Ledger) pairQC(task *Task, resourceName string) {
	if !task.IsQC() {
		return
	}

	baseName := BaseTaskName(task.Name)

	if _, exists := l.qcResource[baseName]; exists {
		return
	}

	l.qcResource[baseName] = resourceName
}
