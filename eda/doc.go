// Package eda implements the column studies of the library: complete
// descriptive workups of continuous, discrete and categorical variables,
// plus dataset-wide outlier summaries.
//
// Every study takes a dataset.Frame and a column name and returns a typed
// report; nothing here prints or logs. Rendering reports to structured logs,
// CSV exports and PNG figures is the report package's job, which keeps the
// statistics reusable from services and tests.
//
//	f, _ := dataset.OpenCSV("titanic.csv")
//	rep, err := eda.StudyContinuous(f, "fare", eda.WithPlotDir("out"))
//	if err != nil {
//	    // ...
//	}
//	fmt.Println(rep.OutlierCount, rep.Normality.Verdict)
package eda
