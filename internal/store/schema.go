package store

// Dates are kept exactly as they appear in the source file; parsing them
// is the loader's job so that a dataset round-trips unchanged.
const createSchema = `
CREATE TABLE IF NOT EXISTS Concert (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  date TEXT NOT NULL,
  artist TEXT NOT NULL,
  venue TEXT NOT NULL,
  city TEXT NOT NULL
);

CREATE UNIQUE INDEX IF NOT EXISTS ConcertIdentity ON Concert (date, artist, venue, city);

CREATE TABLE IF NOT EXISTS SetlistEntry (
  concert INTEGER NOT NULL,
  position INTEGER NOT NULL,
  song TEXT NOT NULL,
  FOREIGN KEY (concert) REFERENCES Concert(id),
  PRIMARY KEY (concert, position)
);
`
